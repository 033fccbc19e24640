package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func validForm() ProductForm {
	return ProductForm{
		Name:       "Milk",
		Price:      "79.90",
		CategoryID: "2",
		Available:  true,
		BuyURL:     "https://example.test/buy/1",
	}
}

func TestMutations_RequireSessionBeforeNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	c := New(srv.URL, nil) // no token installed
	ctx := context.Background()

	calls := []struct {
		name string
		run  func() error
	}{
		{"create", func() error { return c.CreateProduct(ctx, validForm(), "") }},
		{"update", func() error { return c.UpdateProduct(ctx, 5, validForm(), "") }},
		{"delete", func() error { return c.DeleteProduct(ctx, 5) }},
		{"category create", func() error { return c.CreateCategory(ctx, "Dairy") }},
		{"category delete", func() error { return c.DeleteCategory(ctx, 2) }},
	}
	for _, tc := range calls {
		if err := tc.run(); !errors.Is(err, ErrNoSession) {
			t.Fatalf("%s: expected ErrNoSession, got %v", tc.name, err)
		}
	}
	if hits != 0 {
		t.Fatalf("precondition violations must not reach the server, got %d hits", hits)
	}
}

func TestCreateProduct_EmptyRequiredFieldRejected(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	c.SetToken("tok")

	form := validForm()
	form.Name = "  "
	var pe PreconditionError
	if err := c.CreateProduct(context.Background(), form, ""); !errors.As(err, &pe) || pe.Field != "name" {
		t.Fatalf("expected name precondition error, got %v", err)
	}
}

func TestCreateProduct_SendsMultipartWithTokenAndFile(t *testing.T) {
	img := filepath.Join(t.TempDir(), "cover.jpg")
	if err := os.WriteFile(img, []byte("jpegbytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/create" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Admin-Token"); got != "tok-1" {
			t.Fatalf("missing admin token header, got %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		for k, want := range map[string]string{
			"name":       "Milk",
			"price":      "79.90",
			"categoryID": "2",
			"available":  "true",
			"buy_url":    "https://example.test/buy/1",
		} {
			if got := r.FormValue(k); got != want {
				t.Fatalf("field %s: want %q, got %q", k, want, got)
			}
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part missing: %v", err)
		}
		f.Close()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.SetToken("tok-1")
	if err := c.CreateProduct(context.Background(), validForm(), img); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateProduct_IncludesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/update" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		if got := r.FormValue("id"); got != "5" {
			t.Fatalf("expected id=5, got %q", got)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.SetToken("tok")
	if err := c.UpdateProduct(context.Background(), 5, validForm(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateProduct_MissingImageFileRejectedBeforeNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.SetToken("tok")
	var pe PreconditionError
	err := c.CreateProduct(context.Background(), validForm(), filepath.Join(t.TempDir(), "nope.jpg"))
	if !errors.As(err, &pe) || pe.Field != "file" {
		t.Fatalf("expected file precondition error, got %v", err)
	}
	if hits != 0 {
		t.Fatalf("expected no request, got %d", hits)
	}
}

func TestDeleteProduct_SendsJSONID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/delete" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req struct {
			ID int `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID != 7 {
			t.Fatalf("unexpected body: %+v err=%v", req, err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.SetToken("tok")
	if err := c.DeleteProduct(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteProduct_ServerRejectionSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.SetToken("stale")
	err := c.DeleteProduct(context.Background(), 7)
	var se StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 StatusError, got %v", err)
	}
}

func TestCategoryWrites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/category/create":
			var req struct {
				Name string `json:"name"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name != "Dairy" {
				t.Fatalf("unexpected create body: %+v err=%v", req, err)
			}
			w.WriteHeader(http.StatusCreated)
		case "/api/admin/category/delete":
			var req struct {
				ID int `json:"id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID != 3 {
				t.Fatalf("unexpected delete body: %+v err=%v", req, err)
			}
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	c.SetToken("tok")
	if err := c.CreateCategory(context.Background(), "Dairy"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := c.DeleteCategory(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var pe PreconditionError
	if err := c.CreateCategory(context.Background(), "   "); !errors.As(err, &pe) || pe.Field != "name" {
		t.Fatalf("expected name precondition error, got %v", err)
	}
}
