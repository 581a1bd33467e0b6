package ipc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// ErrUnavailable marks a control endpoint that could not be opened.
var ErrUnavailable = errors.New("player endpoint unavailable")

// UnavailableError reports why the endpoint could not be opened.
type UnavailableError struct {
	Endpoint Endpoint
	Reason   string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("connect to player: %s %s: %v", e.Endpoint.Address, e.Reason, e.Err)
}

func (e *UnavailableError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

func unavailable(endpoint Endpoint, err error) error {
	var reason string
	switch {
	case errors.Is(err, fs.ErrNotExist):
		reason = "not found; is the player running with an IPC server?"
	case errors.Is(err, syscall.ECONNREFUSED):
		reason = "refused the connection"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		reason = "did not accept the connection in time"
	default:
		reason = "could not be opened"
	}
	return &UnavailableError{Endpoint: endpoint, Reason: reason, Err: err}
}
