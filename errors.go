package transit

import "errors"

// Engine errors.
var (
	// ErrNotArmed is returned by Step when no transition is armed.
	ErrNotArmed = errors.New("transit: no transition armed")

	// ErrBusy is returned by Arm while a transition is still running.
	ErrBusy = errors.New("transit: transition in progress")

	// ErrInvalidRequest is returned by Arm for a negative duration.
	ErrInvalidRequest = errors.New("transit: invalid request")

	// ErrInvalidSize is returned by NewEngine for a non-positive screen size.
	ErrInvalidSize = errors.New("transit: invalid screen size")
)
