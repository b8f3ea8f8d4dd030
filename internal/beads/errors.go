package beads

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a value outside the domain of bead sort.
var ErrInvalidInput = errors.New("beads: input must contain only non-negative integers")

// InvalidInputError reports the first offending element of a rejected input.
type InvalidInputError struct {
	Index int
	Value int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: values[%d] = %d", ErrInvalidInput, e.Index, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
