package fdtd

import (
	"errors"
	"fmt"
)

// Domain errors for solver configuration and stepping.
var (
	// ErrGridTooSmall indicates fewer than two E-node coordinates.
	ErrGridTooSmall = errors.New("fdtd: grid needs at least 2 points")

	// ErrNonUniform indicates E-node coordinates that are not strictly
	// increasing with constant spacing.
	ErrNonUniform = errors.New("fdtd: grid coordinates must be strictly increasing and uniformly spaced")

	// ErrInvalidBoundary indicates an unrecognized boundary-condition token.
	ErrInvalidBoundary = errors.New("fdtd: invalid boundary condition")

	// ErrSourceConfigured indicates a second total-field source registration.
	ErrSourceConfigured = errors.New("fdtd: a total-field source is already registered")

	// ErrRegionConfigured indicates more than one dispersive material region.
	ErrRegionConfigured = errors.New("fdtd: only one dispersive material region is supported")

	// ErrBadTimestep indicates a non-positive time step, or a step dt
	// that differs from the dt the dispersion coefficients were built with.
	ErrBadTimestep = errors.New("fdtd: invalid time step")

	// ErrDimension indicates an initial condition whose length does not
	// match the E grid.
	ErrDimension = errors.New("fdtd: initial condition length must match the E grid")
)

// StepError wraps an error with the step number and simulation time at
// which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
