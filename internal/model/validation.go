package model

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidationError reports a missing or invalid field, either in user input
// before it is sent or in a payload received from the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validator is implemented by every payload type checked at the client boundary.
type Validator interface {
	Validate() error
}

// BloodGroups lists the accepted blood group codes in display order.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// ValidateBloodGroup checks that group is one of BloodGroups.
func ValidateBloodGroup(group string) error {
	for _, g := range BloodGroups {
		if g == group {
			return nil
		}
	}
	return invalid("bloodGroup", "unknown blood group %q", group)
}

// ValidateEmail checks that email is a bare address.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("email", "required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email", "invalid address %q", email)
	}
	return nil
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidatePassword checks the password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return invalid("password", "must be at least %d characters", MinPasswordLength)
	}
	return nil
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "required")
	}
	return nil
}
