// Package client talks to the blood bank REST backend. Every call attaches
// the current session token, and a 401 clears the session before the error
// reaches the caller. Nothing is retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/bloodbank/internal/model"
)

// DefaultTimeout bounds every request unless overridden.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// TokenSource provides the bearer token and forgets it on a 401.
type TokenSource interface {
	Token() string
	Clear(ctx context.Context) error
}

// Client is a backend API client.
type Client struct {
	baseURL        string
	tokens         TokenSource
	http           *http.Client
	onUnauthorized func()
	userAgent      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithUnauthorizedHandler registers fn to run after a 401 has cleared the
// session. The console uses it to send the user back to login.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api". tokens may be nil for anonymous use.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokens:    tokens,
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: "bloodbank",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type call struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	out         any

	// anonymous calls (login, signup) carry no token, and their 401 means
	// bad credentials rather than an expired session.
	anonymous bool
}

// Do sends a JSON request and decodes a 2xx JSON response into out, which
// may be nil. A decoded value implementing model.Validator is validated.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	return c.doJSON(ctx, method, path, body, out, false)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, anonymous bool) error {
	cl := call{method: method, path: path, out: out, anonymous: anonymous}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		cl.body = bytes.NewReader(data)
		cl.contentType = "application/json"
	}
	return c.send(ctx, cl)
}

func (c *Client) send(ctx context.Context, cl call) error {
	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, cl.body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	authenticated := false
	if !cl.anonymous && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("request failed", "method", cl.method, "path", cl.path, "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrNetwork, cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	slog.Debug("request",
		"method", cl.method,
		"path", cl.path,
		"status", resp.StatusCode,
		"authenticated", authenticated,
		"duration", time.Since(start).Round(time.Millisecond),
		"request_id", req.Header.Get("X-Request-ID"),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := readError(resp)
		if resp.StatusCode == http.StatusUnauthorized && !cl.anonymous {
			c.unauthorized(ctx)
		}
		return herr
	}

	if cl.out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return fmt.Errorf("%w: decoding %s %s: %w", ErrNetwork, cl.method, cl.path, err)
	}
	if v, ok := cl.out.(model.Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// unauthorized clears the session and notifies the handler.
func (c *Client) unauthorized(ctx context.Context) {
	if c.tokens != nil {
		if err := c.tokens.Clear(ctx); err != nil {
			slog.Error("failed to clear session after 401", "error", err)
		}
	}
	slog.Warn("session rejected by backend, signed out")
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func readError(resp *http.Response) *HTTPError {
	herr := &HTTPError{Status: resp.StatusCode}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body model.ErrorBody
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		herr.Code = body.Code
		herr.Message = body.Error
		return herr
	}
	if text := strings.TrimSpace(string(data)); text != "" {
		herr.Message = text
	} else {
		herr.Message = http.StatusText(resp.StatusCode)
	}
	return herr
}

// getList fetches a JSON array and validates every element.
func getList[T model.Validator](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.Do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%s item %d: %w", path, i, err)
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
