package transport

import (
	"errors"
	"fmt"
)

// ErrClosed is returned for requests made after Close.
var ErrClosed = errors.New("transport is closed")

// StatusError is a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Method     string
	Endpoint   string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Endpoint, e.StatusCode, string(e.Body))
}

// AsStatusError unwraps err into a StatusError when there is one.
func AsStatusError(err error) (*StatusError, bool) {
	var serr *StatusError

	if errors.As(err, &serr) {
		return serr, true
	}

	return nil, false
}
