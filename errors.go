package ruff

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned by decoding when the input does not start
	// with the farbfeld magic.
	ErrFormat = errors.New("farbfeld: invalid magic")

	// ErrDimensions is returned when the number of pixels does not match
	// the width and height of the image.
	ErrDimensions = errors.New("farbfeld: pixel count does not match dimensions")
)

// IncompleteError is returned by decoding when the input ends before a
// required field is fully available. Needed is the number of additional
// bytes required to complete the field, or zero if the amount is unknown.
type IncompleteError struct {
	Needed int
}

func (e *IncompleteError) Error() string {
	if e.Needed == 0 {
		return "farbfeld: need more data"
	}
	return fmt.Sprintf("farbfeld: need %d more bytes", e.Needed)
}
