package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchProducts_NormalizesEnvelopeShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/read" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.RawQuery; got != "search=milk&category_id=2" {
			t.Fatalf("query not passed through: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":1,"name":"Milk","price":79.9}],"total":1}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	items, err := c.FetchProducts(context.Background(), "search=milk&category_id=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Milk" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestFetchProducts_NormalizesBareArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Milk"},{"id":2,"name":"Bread"}]`))
	}))
	defer srv.Close()

	items, err := New(srv.URL, nil).FetchProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[1].Name != "Bread" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestFetchProducts_EmptyQueryHitsBareReadPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Fatalf("expected no query, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, nil).FetchProducts(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchProducts_NonOKIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).FetchProducts(context.Background(), "")
	var se StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", se.StatusCode)
	}
}

func TestFetchProducts_MalformedBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).FetchProducts(context.Background(), "")
	var te TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestFetchProducts_ConnectFailureIsTransportError(t *testing.T) {
	// Nothing listens here.
	_, err := New("http://127.0.0.1:1", nil).FetchProducts(context.Background(), "")
	var te TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if IsCancelled(err) {
		t.Fatalf("transport failure must not read as cancellation")
	}
}

func TestFetchProducts_CancellationIsRecognizable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).FetchProducts(ctx, "")
	if !IsCancelled(err) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestCategories_CachedForSession(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`[{"id":1,"name":"Dairy"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	for i := 0; i < 3; i++ {
		cats, err := c.Categories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cats) != 1 || cats[0].Name != "Dairy" {
			t.Fatalf("unexpected categories: %+v", cats)
		}
	}
	if hits != 1 {
		t.Fatalf("expected a single fetch for the session, got %d", hits)
	}

	if _, err := c.RefreshCategories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 2 {
		t.Fatalf("expected refresh to hit the server, got %d hits", hits)
	}

	c.ResetCategoryCache()
	if _, err := c.Categories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 3 {
		t.Fatalf("expected re-fetch after cache reset, got %d hits", hits)
	}
}

func TestCategories_FailureIsNotCached(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if _, err := c.Categories(context.Background()); err == nil {
		t.Fatalf("expected first fetch to fail")
	}
	if _, err := c.Categories(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/login" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"token":"tok-123"}`))
	}))
	defer srv.Close()

	tok, err := New(srv.URL, nil).Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "tok-123" {
		t.Fatalf("unexpected token: %q", tok)
	}
}

func TestLogin_EmptyCredentialsRejectedBeforeNetwork(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)

	var pe PreconditionError
	if _, err := c.Login(context.Background(), "", "secret"); !errors.As(err, &pe) || pe.Field != "login" {
		t.Fatalf("expected login precondition error, got %v", err)
	}
	if _, err := c.Login(context.Background(), "admin", ""); !errors.As(err, &pe) || pe.Field != "password" {
		t.Fatalf("expected password precondition error, got %v", err)
	}
}

func TestLogin_BadCredentialsSurfaceStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Login(context.Background(), "admin", "wrong")
	var se StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 StatusError, got %v", err)
	}
}
