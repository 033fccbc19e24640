package api

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSession is returned when a mutating call is attempted without an admin
// token. This is a caller bug, not a runtime condition: no request is sent.
var ErrNoSession = errors.New("admin session required")

// PreconditionError reports a request rejected client-side before any network
// I/O (e.g. a required form field left empty).
type PreconditionError struct {
	Field string
}

func (e PreconditionError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// TransportError wraps a network or decode failure on the way to/from the
// server. Read-path callers degrade to an empty result on it.
type TransportError struct {
	Op  string
	Err error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response. Write-path callers surface it to
// the initiating UI; local state is left unchanged.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s: server returned %d", e.Op, e.StatusCode)
}

// IsCancelled reports whether err stems from a superseded request. Cancelled
// requests are dropped silently, never shown to the user.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
