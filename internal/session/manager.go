package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/erazemk/bloodbank/internal/client"
	"github.com/erazemk/bloodbank/internal/model"
)

var (
	// ErrEmailTaken is returned by an offline signup for a known email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by an offline login that matches no
	// offline account.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Authenticator is the backend side of login, signup and logout.
type Authenticator interface {
	Login(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Signup(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Logout(ctx context.Context) error
}

// Manager runs login, signup and logout against the backend and records the
// outcome in a Store.
type Manager struct {
	store   *Store
	auth    Authenticator
	offline bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithOfflineFallback lets login and signup use locally stored accounts when
// the backend cannot be reached. A backend that answers, even with a
// rejection, is never second-guessed.
func WithOfflineFallback() ManagerOption {
	return func(m *Manager) { m.offline = true }
}

// NewManager creates a Manager.
func NewManager(s *Store, a Authenticator, opts ...ManagerOption) *Manager {
	m := &Manager{store: s, auth: a}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the underlying session store.
func (m *Manager) Store() *Store {
	return m.store
}

// Login signs in. On any error the stored session is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*model.Session, error) {
	creds := model.Credentials{Email: strings.TrimSpace(email), Password: password}

	sess, err := m.auth.Login(ctx, creds)
	if err != nil {
		if !m.fallback(err) {
			return nil, err
		}
		slog.Warn("backend unreachable, trying offline login", "email", creds.Email, "error", err)
		u, oerr := m.store.checkOfflineUser(ctx, creds)
		if oerr != nil {
			return nil, oerr
		}
		sess = u.session()
	}

	if err := m.store.Set(ctx, sess); err != nil {
		return nil, err
	}
	slog.Info("signed in", "email", sess.Email, "role", sess.Role, "offline", sess.Token == "")
	return m.store.Current(), nil
}

// Signup creates an account and signs in as it.
func (m *Manager) Signup(ctx context.Context, email, password string) (*model.Session, error) {
	creds := model.Credentials{Email: strings.TrimSpace(email), Password: password}

	sess, err := m.auth.Signup(ctx, creds)
	if err != nil {
		if !m.fallback(err) {
			return nil, err
		}
		slog.Warn("backend unreachable, creating offline account", "email", creds.Email, "error", err)
		u, oerr := m.store.addOfflineUser(ctx, creds)
		if oerr != nil {
			return nil, oerr
		}
		sess = u.session()
	}

	if err := m.store.Set(ctx, sess); err != nil {
		return nil, err
	}
	slog.Info("signed up", "email", sess.Email, "offline", sess.Token == "")
	return m.store.Current(), nil
}

// Logout asks the backend to revoke the token, then forgets the current
// session. The local session is cleared even when the backend call fails.
// Logging out twice is fine.
func (m *Manager) Logout(ctx context.Context) error {
	if m.store.Token() != "" {
		if err := m.auth.Logout(ctx); err != nil {
			slog.Warn("backend logout failed, clearing local session anyway", "error", err)
		}
	}
	return m.store.Clear(ctx)
}

func (m *Manager) fallback(err error) bool {
	return m.offline && errors.Is(err, client.ErrNetwork)
}
