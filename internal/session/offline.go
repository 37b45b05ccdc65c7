package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/bloodbank/internal/auth"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// offlineUser is an account created while the backend was unreachable.
type offlineUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Store) offlineUsers(ctx context.Context) ([]offlineUser, error) {
	raw, ok, err := store.GetSetting(ctx, s.db, usersKey)
	if err != nil || !ok {
		return nil, err
	}
	var users []offlineUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("decoding offline users: %w", err)
	}
	return users, nil
}

func findUser(users []offlineUser, email string) *offlineUser {
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}

// addOfflineUser records a new offline account. ErrEmailTaken if the email
// is already known.
func (s *Store) addOfflineUser(ctx context.Context, creds model.Credentials) (*offlineUser, error) {
	users, err := s.offlineUsers(ctx)
	if err != nil {
		return nil, err
	}
	if findUser(users, creds.Email) != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return nil, err
	}
	u := offlineUser{
		ID:           uuid.NewString(),
		Email:        creds.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    s.clock.Now().UTC(),
	}
	users = append(users, u)

	data, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("encoding offline users: %w", err)
	}
	if err := store.PutSetting(ctx, s.db, usersKey, string(data)); err != nil {
		return nil, err
	}
	return &u, nil
}

// checkOfflineUser returns the offline account matching creds.
func (s *Store) checkOfflineUser(ctx context.Context, creds model.Credentials) (*offlineUser, error) {
	users, err := s.offlineUsers(ctx)
	if err != nil {
		return nil, err
	}
	u := findUser(users, creds.Email)
	if u == nil || !auth.CheckPassword(u.PasswordHash, creds.Password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (u *offlineUser) session() *model.Session {
	role := u.Role
	if role == "" {
		role = model.RoleUser
	}
	return &model.Session{Email: u.Email, ID: model.UserID(u.ID), Role: role}
}
