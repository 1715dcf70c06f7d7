package world

import "errors"

// Contract violations. Callers treat these as fatal: a corrupted stack
// invalidates every later turn.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("entity not found")
)

// ErrOutOfBounds is returned for moves whose destination lies outside the grid.
// Devices treat it as a blocked push.
var ErrOutOfBounds = errors.New("position out of bounds")

func isOutOfBounds(err error) bool {
	return errors.Is(err, ErrOutOfBounds)
}
