package domain

import "errors"

// ErrInvalidTransition is returned when a requested state change is not an
// edge in the payment state machine.
var ErrInvalidTransition = errors.New("invalid payment state transition")
