package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ProductForm carries the admin form fields for create/update. Price and
// CategoryID stay textual: they are forwarded as multipart form values
// exactly as entered and parsed server-side.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	CategoryID  string
	Available   bool
	BuyURL      string
}

func (f ProductForm) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return PreconditionError{Field: "name"}
	}
	if strings.TrimSpace(f.Price) == "" {
		return PreconditionError{Field: "price"}
	}
	if strings.TrimSpace(f.CategoryID) == "" {
		return PreconditionError{Field: "categoryID"}
	}
	return nil
}

// CreateProduct sends a multipart create. imagePath is optional ("" = no
// image); when set, the file is attached as the "file" part. The server
// assigns the id and image URL, so callers re-fetch rather than insert
// locally.
func (c *Client) CreateProduct(ctx context.Context, form ProductForm, imagePath string) error {
	if err := form.validate(); err != nil {
		return err
	}
	return c.postProductForm(ctx, "create product", c.baseURL+"/api/admin/create", 0, form, imagePath)
}

// UpdateProduct sends a multipart update scoped to an existing id.
func (c *Client) UpdateProduct(ctx context.Context, id int, form ProductForm, imagePath string) error {
	if err := form.validate(); err != nil {
		return err
	}
	return c.postProductForm(ctx, "update product", c.baseURL+"/api/admin/update", id, form, imagePath)
}

// DeleteProduct removes a product. Callers may drop the row locally on
// success; on failure nothing was changed on either side.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	payload, _ := json.Marshal(map[string]int{"id": id})
	_, err := c.postJSON(ctx, "delete product", c.baseURL+"/api/admin/delete", payload, true)
	return err
}

// CreateCategory adds a category; callers refresh the category collection on
// success (the server assigns the id).
func (c *Client) CreateCategory(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return PreconditionError{Field: "name"}
	}
	payload, _ := json.Marshal(map[string]string{"name": strings.TrimSpace(name)})
	_, err := c.postJSON(ctx, "create category", c.baseURL+"/api/admin/category/create", payload, true)
	return err
}

// DeleteCategory removes a category. Products still referencing it are NOT
// reconciled here: they render an unknown category until their next refresh.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	payload, _ := json.Marshal(map[string]int{"id": id})
	_, err := c.postJSON(ctx, "delete category", c.baseURL+"/api/admin/category/delete", payload, true)
	return err
}

func (c *Client) postProductForm(ctx context.Context, op, url string, id int, form ProductForm, imagePath string) error {
	if c.token == "" {
		return ErrNoSession
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"name", form.Name},
		{"description", form.Description},
		{"price", form.Price},
		{"categoryID", form.CategoryID},
		{"available", strconv.FormatBool(form.Available)},
		{"buy_url", form.BuyURL},
	}
	if id > 0 {
		fields = append([][2]string{{"id", strconv.Itoa(id)}}, fields...)
	}
	for _, kv := range fields {
		if err := mw.WriteField(kv[0], kv[1]); err != nil {
			return TransportError{Op: op, Err: err}
		}
	}

	if imagePath = strings.TrimSpace(imagePath); imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return PreconditionError{Field: "file"}
		}
		part, err := mw.CreateFormFile("file", filepath.Base(imagePath))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		f.Close()
		if err != nil {
			return TransportError{Op: op, Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return TransportError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(adminTokenHeader, c.token)

	_, err = c.do(op, req)
	return err
}
