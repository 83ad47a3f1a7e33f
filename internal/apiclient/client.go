// Package apiclient is the typed client for the Vantura REST API. One
// Client instance is shared by the whole application; every call maps to a
// single request with a fixed timeout and no retries.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL points at a locally running backend. The browser build
// overrides it with the same-origin /api/v1 prefix served by the host.
const DefaultBaseURL = "http://localhost:8080/api/v1"

const requestTimeout = 10 * time.Second

// APIError is a non-2xx response, carrying the backend-provided message
// when the payload had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// Client issues credentialed JSON requests against one base URL.
type Client struct {
	base string
	http *http.Client
}

// New returns a Client for the given base URL, or DefaultBaseURL when
// empty. Native builds keep cookies in a jar; in the browser the fetch
// layer manages same-origin cookies itself.
func New(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	jar, _ := cookiejar.New(nil)
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
		},
	}
}

// do issues one request. A non-nil body is JSON-encoded; a non-nil out is
// decoded from a 2xx response body. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// doRaw is do without response decoding; list endpoints use it so the
// normalizer sees the raw body.
func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	return raw, nil
}

// errorMessage extracts a human-readable cause from an error payload.
// Backends in the wild answer with {"message": ...}, {"error": ...} or a
// plain string; anything else yields an empty message.
func errorMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}
	return ""
}

// listOf fetches a list endpoint and normalizes whatever envelope the
// backend answered with.
func listOf[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}
