package models

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or setter receives
	// a missing required reference or an out-of-range value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidStateTransition is returned when a lifecycle operation is
	// invoked from a status that does not permit it.
	ErrInvalidStateTransition = errors.New("invalid state transition")
)
