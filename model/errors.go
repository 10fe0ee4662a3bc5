package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is the cause of every load failure.
	ErrMalformedInput = errors.New("malformed input")
	// ErrStepLimit is returned by Simulate when the floor did not settle in time.
	ErrStepLimit = errors.New("step limit reached")
)

// InputError points at the place in the input that could not be loaded.
// Line and Col are 1-based, zero when not applicable.
type InputError struct {
	Line, Col int
	Reason    string
}

func (e *InputError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("%v: %s", ErrMalformedInput, e.Reason)
	case e.Col == 0:
		return fmt.Sprintf("%v: line %d: %s", ErrMalformedInput, e.Line, e.Reason)
	default:
		return fmt.Sprintf("%v: line %d col %d: %s", ErrMalformedInput, e.Line, e.Col, e.Reason)
	}
}

func (e *InputError) Unwrap() error {
	return ErrMalformedInput
}
