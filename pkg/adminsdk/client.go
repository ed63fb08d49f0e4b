// Package adminsdk is a client toolkit for the promo admin API. It bundles
// thin per-entity REST wrappers with reusable form and list controllers, so
// admin tooling does not re-implement the same CRUD lifecycle per entity.
package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Client talks to the admin API. All per-entity wrappers share one Client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a client for the given API base URL, e.g.
// "https://example.com/api/v1".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after login.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	return decodePayload(raw, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(encoded), out)
}

func (c *Client) sendMultipart(ctx context.Context, path string, payload *MultipartPayload, out interface{}) error {
	body, contentType, err := payload.Encode()
	if err != nil {
		return err
	}
	// Multipart bodies always travel as POST; updates carry the _method
	// override field instead of a PUT verb.
	return c.do(ctx, http.MethodPost, path, contentType, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// decodePayload handles both response shapes the API produces: a bare
// record/collection, or an envelope with the payload under "data".
func decodePayload(raw []byte, out interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, out)
	}
	return json.Unmarshal(raw, out)
}

// APIError is a non-2xx response decoded into its structured parts.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// FirstMessage returns the most useful single message for display: the
// top-level message when present, else the first field error.
func (e *APIError) FirstMessage() string {
	if e.Message != "" {
		return e.Message
	}
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if len(e.Errors[k]) > 0 && e.Errors[k][0] != "" {
			return e.Errors[k][0]
		}
	}
	return ""
}

func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body struct {
		Message string                     `json:"message"`
		Errors  map[string]json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	apiErr.Message = body.Message
	if len(body.Errors) > 0 {
		apiErr.Errors = make(map[string][]string, len(body.Errors))
		for field, val := range body.Errors {
			// Field errors arrive either as a single string or a list.
			var single string
			if json.Unmarshal(val, &single) == nil {
				apiErr.Errors[field] = []string{single}
				continue
			}
			var many []string
			if json.Unmarshal(val, &many) == nil {
				apiErr.Errors[field] = many
			}
		}
	}
	return apiErr
}

// errorMessage extracts a display message from any error, falling back to a
// generic string when the server body carried nothing structured.
func errorMessage(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		if msg := apiErr.FirstMessage(); msg != "" {
			return msg
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "Something went wrong. Please try again."
}
