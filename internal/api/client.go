package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shopfront-cli/internal/model"
)

const adminTokenHeader = "X-Admin-Token"

// Client talks to the storefront API. It carries the admin session token (in
// memory only; discarded when the process exits) and a session-scoped
// category cache.
//
// Request timeouts are the transport's concern: pass an *http.Client with
// whatever Timeout fits, or nil for a 15s default. Per-request cancellation
// comes from the context.
type Client struct {
	baseURL string
	httpc   *http.Client

	token string

	cats     []model.Category
	haveCats bool
}

func New(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc:   httpc,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// SetToken installs the admin session token used for mutating calls.
func (c *Client) SetToken(token string) { c.token = strings.TrimSpace(token) }

func (c *Client) Token() string { return c.token }

// ClearToken ends the admin session (logout path).
func (c *Client) ClearToken() { c.token = "" }

// FetchProducts runs the list request for an already-encoded query string.
// The response may be either a bare array or an {items: [...]} envelope; both
// are normalized to a plain slice here so downstream code sees one shape.
func (c *Client) FetchProducts(ctx context.Context, rawQuery string) ([]model.Product, error) {
	u := c.baseURL + "/api/read"
	if q := strings.TrimPrefix(strings.TrimSpace(rawQuery), "?"); q != "" {
		u += "?" + q
	}

	body, err := c.get(ctx, "read products", u)
	if err != nil {
		return nil, err
	}
	return normalizeProducts(body)
}

func normalizeProducts(body []byte) ([]model.Product, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []model.Product
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, TransportError{Op: "read products", Err: err}
		}
		return items, nil
	}
	var envelope struct {
		Items []model.Product `json:"items"`
		Total int64           `json:"total"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, TransportError{Op: "read products", Err: err}
	}
	return envelope.Items, nil
}

// Categories returns the category collection, fetching it at most once per
// session. A forced refresh (after admin category writes) goes through
// RefreshCategories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	if c.haveCats {
		return c.cats, nil
	}
	return c.RefreshCategories(ctx)
}

// RefreshCategories re-fetches the category collection and replaces the cache.
func (c *Client) RefreshCategories(ctx context.Context) ([]model.Category, error) {
	body, err := c.get(ctx, "read categories", c.baseURL+"/api/categories")
	if err != nil {
		return nil, err
	}
	var cats []model.Category
	if err := json.Unmarshal(body, &cats); err != nil {
		return nil, TransportError{Op: "read categories", Err: err}
	}
	c.cats = cats
	c.haveCats = true
	return cats, nil
}

// ResetCategoryCache drops the session cache (session teardown).
func (c *Client) ResetCategoryCache() {
	c.cats = nil
	c.haveCats = false
}

// Login exchanges credentials for an admin token. The token is returned, not
// installed; call SetToken to start the session.
func (c *Client) Login(ctx context.Context, login, password string) (string, error) {
	if strings.TrimSpace(login) == "" {
		return "", PreconditionError{Field: "login"}
	}
	if password == "" {
		return "", PreconditionError{Field: "password"}
	}

	payload, _ := json.Marshal(map[string]string{"login": login, "password": password})
	body, err := c.postJSON(ctx, "login", c.baseURL+"/api/admin/login", payload, false)
	if err != nil {
		return "", err
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", TransportError{Op: "login", Err: err}
	}
	if strings.TrimSpace(resp.Token) == "" {
		return "", TransportError{Op: "login", Err: fmt.Errorf("empty token in response")}
	}
	return resp.Token, nil
}

func (c *Client) get(ctx context.Context, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, TransportError{Op: op, Err: err}
	}
	return c.do(op, req)
}

func (c *Client) postJSON(ctx context.Context, op, url string, payload []byte, withToken bool) ([]byte, error) {
	if withToken && c.token == "" {
		return nil, ErrNoSession
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set(adminTokenHeader, c.token)
	}
	return c.do(op, req)
}

func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		// Keep context cancellation recognizable through errors.Is; it is the
		// "superseded request" signal, not a failure.
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		return nil, TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, StatusError{Op: op, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		return nil, TransportError{Op: op, Err: err}
	}
	return body, nil
}
