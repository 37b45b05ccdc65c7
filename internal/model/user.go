package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// User represents a backend account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// RoleAtLeast checks if role meets or exceeds the minimum required role.
func RoleAtLeast(role, minimum string) bool {
	levels := map[string]int{
		RoleAdmin: 2,
		RoleUser:  1,
	}
	have, ok := levels[role]
	need, known := levels[minimum]
	return ok && known && have >= need
}

// Session is the authenticated identity held by the console.
type Session struct {
	Email string `json:"email"`
	ID    UserID `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

// Validate checks a session returned by the auth endpoints.
func (s Session) Validate() error {
	if err := required("email", s.Email); err != nil {
		return err
	}
	if err := required("id", string(s.ID)); err != nil {
		return err
	}
	if s.Role != RoleUser && s.Role != RoleAdmin {
		return invalid("role", "unknown role %q", s.Role)
	}
	return nil
}

// UserID is a user identifier that decodes from either a JSON string or number.
type UserID string

// UnmarshalJSON accepts "abc", "42" and 42.
func (id *UserID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = UserID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = UserID(s)
	return nil
}

// UserIDFromInt formats a numeric user ID.
func UserIDFromInt(id int64) UserID {
	return UserID(strconv.FormatInt(id, 10))
}

// Credentials is the body of login and signup calls.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks credentials before they are sent.
func (c Credentials) Validate() error {
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	return required("password", c.Password)
}
