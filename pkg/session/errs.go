package session

import "errors"

var (
	// ErrUnknownField indicates a Set on a field the form does not have.
	ErrUnknownField = errors.New("session: unknown field")

	// ErrInvalidChoice indicates a dropdown value outside its option list.
	ErrInvalidChoice = errors.New("session: invalid choice")
)
