package network

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidTopology   = errors.New("invalid topology")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// DimensionError reports a vector or matrix whose length disagrees with the
// network topology.
type DimensionError struct {
	What string // What was checked (e.g., "input", "target", "weights[1]")
	Want string // Expected size or shape
	Got  string // Actual size or shape
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: want %s, got %s", ErrDimensionMismatch, e.What, e.Want, e.Got)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func lengthError(what string, want, got int) error {
	return &DimensionError{What: what, Want: fmt.Sprint(want), Got: fmt.Sprint(got)}
}

func shapeError(what string, wantR, wantC, gotR, gotC int) error {
	return &DimensionError{
		What: what,
		Want: fmt.Sprintf("%dx%d", wantR, wantC),
		Got:  fmt.Sprintf("%dx%d", gotR, gotC),
	}
}
