package v1

import (
	"errors"
	"fmt"
)

var (
	ErrNoCredentials    = errors.New("username and password are required")
	ErrInvalidSortField = errors.New("sort field is not part of the seed schema")
)

// InvalidAuthError means the service rejected or could not confirm the
// credentials while the client was being built.
type InvalidAuthError struct {
	StatusCode int
	Reason     string
}

func (e *InvalidAuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("invalid credentials: %s (status %d)", e.Reason, e.StatusCode)
	}

	return fmt.Sprintf("invalid credentials: %s", e.Reason)
}
