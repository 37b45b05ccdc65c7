// Package session holds who is signed in to the console. The identity is
// persisted in the local state database and loaded before Open returns.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/erazemk/bloodbank/internal/auth"
	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// Settings keys in the state database.
const (
	currentKey = "auth_user"
	usersKey   = "users"
)

// Store is the persisted current session. It satisfies client.TokenSource.
type Store struct {
	db    *sql.DB
	clock clock.Clock

	mu      sync.RWMutex
	current *model.Session
}

// Open loads the persisted session from db. A stored session that no longer
// decodes or validates is dropped and the store starts signed out.
func Open(ctx context.Context, db *sql.DB, clk clock.Clock) (*Store, error) {
	s := &Store{db: db, clock: clk}

	raw, ok, err := store.GetSetting(ctx, db, currentKey)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !ok {
		return s, nil
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(raw), &sess); err == nil {
		err = sess.Validate()
		if err == nil {
			s.current = &sess
			return s, nil
		}
	}

	slog.Warn("discarding unreadable stored session")
	if err := store.DeleteSetting(ctx, db, currentKey); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns a copy of the signed-in session, or nil.
func (s *Store) Current() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Token returns the bearer token of the current session, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Set persists sess and makes it current.
func (s *Store) Set(ctx context.Context, sess *model.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := store.PutSetting(ctx, s.db, currentKey, string(data)); err != nil {
		return err
	}
	c := *sess
	s.current = &c
	return nil
}

// Clear forgets the current session. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := store.DeleteSetting(ctx, s.db, currentKey); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// ExpiresIn reports how long the current token has left according to its
// unverified exp claim. It is informational; the backend decides validity.
func (s *Store) ExpiresIn() (time.Duration, bool) {
	token := s.Token()
	if token == "" {
		return 0, false
	}
	exp, ok := auth.ExpiresAt(token)
	if !ok {
		return 0, false
	}
	return exp.Sub(s.clock.Now()), true
}
