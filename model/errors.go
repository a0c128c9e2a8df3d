package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedGrid is matched by every *MalformedGridError.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrInvalidCoordinate is matched by every *InvalidCoordinateError.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrNotStarted is returned when stepping a simulation that has no initial grid yet.
	ErrNotStarted = errors.New("simulation is awaiting input")
	// ErrAlreadyRunning is returned when starting a simulation twice.
	ErrAlreadyRunning = errors.New("simulation is already running")
)

// MalformedGridError reports a grid that cannot be constructed
type MalformedGridError struct {
	Width  int
	Height int
	Row    int // offending row, -1 when the problem is not row specific
	Reason string
}

func (e *MalformedGridError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("malformed grid %dx%d: row %d: %s", e.Width, e.Height, e.Row, e.Reason)
	}
	return fmt.Sprintf("malformed grid %dx%d: %s", e.Width, e.Height, e.Reason)
}

// Is lets errors.Is match ErrMalformedGrid
func (e *MalformedGridError) Is(target error) bool {
	return target == ErrMalformedGrid
}

// InvalidCoordinateError reports a coordinate outside [0, W) x [0, H)
type InvalidCoordinateError struct {
	Coordinate    Coordinate
	Width, Height int
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("coordinate %s outside %dx%d grid", e.Coordinate, e.Width, e.Height)
}

// Is lets errors.Is match ErrInvalidCoordinate
func (e *InvalidCoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}
