package views

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/erazemk/bloodbank/internal/client"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/session"
)

// Toast turns a failed action into the one-line message shown to the user.
// action names what was attempted, e.g. "approve request". Business-rule
// failures are told apart by error code, never by message text.
func Toast(action string, err error) string {
	var (
		he *client.HTTPError
		ve *model.ValidationError
	)

	switch {
	case errors.Is(err, session.ErrInvalidCredentials), client.IsCode(err, model.CodeInvalidLogin):
		return "Invalid email or password"
	case errors.Is(err, client.ErrAuthRequired):
		return "Authentication failed. Please login again."
	case errors.Is(err, session.ErrEmailTaken), client.IsCode(err, model.CodeEmailTaken):
		return "An account with this email already exists"
	case client.IsCode(err, model.CodeInsufficientStock):
		return fmt.Sprintf("Cannot %s: Insufficient blood stock available", action)
	case client.IsCode(err, model.CodeBloodGroupMissing):
		return fmt.Sprintf("Cannot %s: Blood group not available in stock", action)
	case client.IsCode(err, model.CodeInvalidTransition):
		return fmt.Sprintf("Cannot %s: request has already been processed", action)
	case errors.As(err, &ve):
		return "Invalid data: " + ve.Error()
	case errors.Is(err, client.ErrNetwork):
		return fmt.Sprintf("Failed to %s. Please check your connection.", action)
	case errors.As(err, &he):
		switch he.Status {
		case http.StatusForbidden:
			return "You don't have permission to " + action + "."
		case http.StatusNotFound:
			return fmt.Sprintf("Cannot %s: not found", action)
		case http.StatusBadRequest:
			return "Invalid request data. Please check all fields."
		}
	}
	return fmt.Sprintf("Failed to %s. Please try again.", action)
}
