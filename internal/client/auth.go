package client

import (
	"context"
	"net/http"

	"github.com/erazemk/bloodbank/internal/model"
)

func (c *Client) authenticate(ctx context.Context, path string, creds model.Credentials) (*model.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	var s model.Session
	if err := c.doJSON(ctx, http.MethodPost, path, creds, &s, true); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, &model.ValidationError{Field: "token", Message: "missing from auth response"}
	}
	return &s, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	return c.authenticate(ctx, "/auth/login", creds)
}

// Signup creates an account and returns its session.
func (c *Client) Signup(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	return c.authenticate(ctx, "/auth/signup", creds)
}

// ValidateSession asks the backend whether the current token is still good.
// An expired token surfaces as ErrAuthRequired, not as false.
func (c *Client) ValidateSession(ctx context.Context) (bool, error) {
	var out struct {
		Valid bool `json:"valid"`
	}
	if err := c.Do(ctx, http.MethodGet, "/auth/validate", nil, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// Me returns the identity behind the current token.
func (c *Client) Me(ctx context.Context) (*model.Session, error) {
	var s model.Session
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ChangePassword changes the signed-in user's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	if err := model.ValidatePassword(next); err != nil {
		return err
	}
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.Do(ctx, http.MethodPut, "/auth/password", body, nil)
}

// Logout revokes the current token on the backend.
func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
