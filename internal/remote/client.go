package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const restPathPrefix = "/rest/v1/"

// Client talks to a hosted PostgREST backend. Requests carry the anon
// key both as apikey header and bearer token. Failed calls return the
// error to the caller; nothing here retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Backend = (*Client)(nil)

// NewClient builds a client for the given base URL and anonymous key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled always reports true; use Disabled for the unconfigured case.
func (c *Client) Enabled() bool { return true }

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

func (c *Client) do(ctx context.Context, method, path, query string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	u := c.baseURL + restPathPrefix + path
	if query != "" {
		u += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)
	if method == http.MethodPost {
		// Merge on conflicting primary key so save is create-or-update.
		req.Header.Set("Prefer", "resolution=merge-duplicates")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}

// Upsert creates or replaces the row keyed by its id.
func (c *Client) Upsert(ctx context.Context, table string, row any) error {
	return c.do(ctx, http.MethodPost, table, "", row, nil)
}

// Update applies a partial row to the record with the given id.
func (c *Client) Update(ctx context.Context, table, id string, patch any) error {
	return c.do(ctx, http.MethodPatch, table, "id=eq."+url.QueryEscape(id), patch, nil)
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	return c.do(ctx, http.MethodDelete, table, "id=eq."+url.QueryEscape(id), nil, nil)
}

// Snapshot loads the full table into dest.
func (c *Client) Snapshot(ctx context.Context, table string, dest any) error {
	return c.do(ctx, http.MethodGet, table, "select=*", nil, dest)
}

// FindActiveUser returns the active user with the given email, or nil
// when the backend holds none.
func (c *Client) FindActiveUser(ctx context.Context, email string) (*UserRow, error) {
	query := "select=*&email=eq." + url.QueryEscape(email) + "&active=eq.true&limit=1"
	var rows []UserRow
	if err := c.do(ctx, http.MethodGet, TableUsers, query, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
