package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a referenced entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition indicates a state-machine precondition violation.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidParameters indicates a proposed action is missing required fields.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrStorage indicates a serialization or persistence medium failure.
	ErrStorage = errors.New("storage error")
)

// ActionError wraps a failure during the materialization of a single
// proposed action. The implementation loop records it and moves on.
type ActionError struct {
	ActionID string
	Err      error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %s: %v", e.ActionID, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
