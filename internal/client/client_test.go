package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/erazemk/bloodbank/internal/model"
)

type memTokens struct {
	mu      sync.Mutex
	token   string
	cleared int
}

func (m *memTokens) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memTokens) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.cleared++
	return nil
}

func newTestClient(t *testing.T, h http.HandlerFunc, tokens TokenSource, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", tokens, opts...)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotPath, gotRequestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"totalDonors":3,"availableUnits":10,"expiringUnits":2}`))
	}, &memTokens{token: "abc"})

	stats, err := c.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	if gotAuth != "Bearer abc" {
		t.Errorf("expected bearer token, got %q", gotAuth)
	}
	if gotPath != "/api/dashboard/stats" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-ID header")
	}
	if stats.TotalDonors != 3 || stats.AvailableUnits != 10 || stats.ExpiringUnits != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var hadAuth bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`{"status":"UP","database":"UP"}`))
	}, &memTokens{})

	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if hadAuth {
		t.Error("expected no Authorization header without a session")
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	var auths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid token","code":"unauthorized"}`))
	}, nil)

	tokens := &memTokens{token: "stale"}
	navigated := 0
	c.tokens = tokens
	c.onUnauthorized = func() { navigated++ }

	_, err := c.ListStock(context.Background())
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	var he *HTTPError
	if !errors.As(err, &he) || he.Status != http.StatusUnauthorized || he.Code != model.CodeUnauthorized {
		t.Errorf("expected 401 HTTPError, got %v", err)
	}
	if tokens.Token() != "" || tokens.cleared != 1 {
		t.Errorf("expected session cleared once, token=%q cleared=%d", tokens.Token(), tokens.cleared)
	}
	if navigated != 1 {
		t.Errorf("expected unauthorized handler called once, got %d", navigated)
	}
	if len(auths) != 1 {
		t.Fatalf("expected exactly one request (no retry), got %d", len(auths))
	}

	// The next call goes out without the stale token.
	c.ListStock(context.Background())
	if len(auths) != 2 || auths[1] != "" {
		t.Errorf("expected second request without bearer, got %q", auths)
	}
}

func TestRejectedLoginKeepsSession(t *testing.T) {
	var hadAuth bool
	tokens := &memTokens{token: "current"}
	navigated := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password","code":"invalid_credentials"}`))
	}, tokens, WithUnauthorizedHandler(func() { navigated = true }))

	_, err := c.Login(context.Background(), model.Credentials{Email: "a@example.com", Password: "nope"})
	if !IsCode(err, model.CodeInvalidLogin) {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}
	if hadAuth {
		t.Error("login must not carry the bearer token")
	}
	if tokens.Token() != "current" || navigated {
		t.Error("a rejected login must not clear the existing session")
	}
}

func TestHTTPErrorCodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/requests/7/status":
			if r.URL.Query().Get("status") != "APPROVED" {
				t.Errorf("unexpected status query %q", r.URL.RawQuery)
			}
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"Insufficient blood stock","code":"insufficient_stock"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}
	}, &memTokens{token: "t"})

	_, err := c.UpdateRequestStatus(context.Background(), 7, model.RequestApproved)
	if !IsCode(err, model.CodeInsufficientStock) {
		t.Errorf("expected insufficient_stock, got %v", err)
	}
	if errors.Is(err, ErrAuthRequired) {
		t.Error("409 must not match ErrAuthRequired")
	}

	_, err = c.ListDonors(context.Background())
	var he *HTTPError
	if !errors.As(err, &he) || he.Status != http.StatusBadGateway || he.Message != "upstream down" || he.Code != "" {
		t.Errorf("unexpected error %#v", err)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, &memTokens{token: "t"})
	_, err := c.ListStock(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
	var he *HTTPError
	if errors.As(err, &he) {
		t.Error("network failure must not be an HTTPError")
	}
}

func TestUndecodableBodyIsNetworkError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>proxy login</html>`))
	}, nil)

	if _, err := c.ListStock(context.Background()); !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}

func TestPayloadValidation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/stock":
			w.Write([]byte(`[
				{"id":1,"bloodGroup":"O+","quantity":4,"expiryDate":"2026-11-01"},
				{"id":2,"bloodGroup":"A-","quantity":2,"expiryDate":"31/12/2026"}
			]`))
		case "/api/auth/me":
			w.Write([]byte(`{"email":"a@example.com","id":5,"role":"SUPERUSER"}`))
		}
	}, &memTokens{token: "t"})

	_, err := c.ListStock(context.Background())
	var ve *model.ValidationError
	if !errors.As(err, &ve) || ve.Field != "expiryDate" {
		t.Errorf("expected expiryDate ValidationError, got %v", err)
	}

	_, err = c.Me(context.Background())
	if !errors.As(err, &ve) || ve.Field != "role" {
		t.Errorf("expected role ValidationError, got %v", err)
	}
}

func TestInputValidatedBeforeSending(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, &memTokens{token: "t"})

	ctx := context.Background()
	var ve *model.ValidationError

	if _, err := c.CreateStock(ctx, model.NewStock{BloodGroup: "Z+", Quantity: 1}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if _, err := c.UpdateStockQuantity(ctx, 1, -3); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if _, err := c.UpdateRequestStatus(ctx, 1, "MAYBE"); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if _, err := c.Login(ctx, model.Credentials{Email: "nobody", Password: "x"}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no requests, got %d", calls)
	}
}

func TestLoginDecodesNumericID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected %s with content type %q", r.Method, r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"email":"a@example.com","id":42,"role":"ADMIN","token":"jwt"}`))
	}, nil)

	s, err := c.Login(context.Background(), model.Credentials{Email: "a@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.ID != "42" || s.Role != model.RoleAdmin || s.Token != "jwt" {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestWithTimeoutDoesNotMutateSharedClient(t *testing.T) {
	shared := &http.Client{}
	c := New("http://example.invalid", nil, WithHTTPClient(shared), WithTimeout(5))
	if shared.Timeout != 0 {
		t.Error("shared client was modified")
	}
	if c.http.Timeout != 5 {
		t.Errorf("expected timeout applied, got %v", c.http.Timeout)
	}
}
