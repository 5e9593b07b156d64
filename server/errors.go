package server

import (
	"errors"
	"fmt"
)

// ErrServerClosed is returned by Serve once the listener has been closed.
var ErrServerClosed = errors.New("server closed")

// BindError is returned by Launch when the listening socket cannot be bound.
type BindError struct {
	Address string
	Err     error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("unable to bind %s: %v", e.Address, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
