package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork matches every failure to reach the backend or read its answer:
// dial, TLS, timeout or an undecodable body.
var ErrNetwork = errors.New("network error")

// ErrAuthRequired matches a 401 from the backend. By the time it is returned
// the stored session has already been cleared.
var ErrAuthRequired = errors.New("authentication required")

// HTTPError is a non-2xx response.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("HTTP %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// Is makes a 401 HTTPError match ErrAuthRequired.
func (e *HTTPError) Is(target error) bool {
	return target == ErrAuthRequired && e.Status == http.StatusUnauthorized
}

// IsCode reports whether err is an HTTPError carrying the given backend code.
func IsCode(err error, code string) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Code == code
}
