package core

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every error returned for a coordinate outside
// the grid.
var ErrOutOfRange = errors.New("coordinate out of range")

// OutOfRangeError carries the offending coordinate and the grid side length.
type OutOfRangeError struct {
	X int
	Y int
	N int
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.N, e.N)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
