// Package scenario builds solvers from declarative descriptions and
// owns the run loop that drives them. It plays the driver role the
// engine itself stays out of: grid construction, region setup, source
// registration and fixed-count stepping.
package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/emsim/internal/fdtd"
)

// Pulse is a Gaussian initial condition for the electric field.
type Pulse struct {
	Center    float64
	Sigma     float64
	Amplitude float64
}

// Source is a total-field source registration.
type Source struct {
	Position float64
	Waveform fdtd.Waveform
}

// Config describes one complete simulation setup.
type Config struct {
	Name     string
	XMin     float64
	XMax     float64
	Cells    int // number of E nodes
	Lower    fdtd.Boundary
	Upper    fdtd.Boundary
	Dt       float64
	Duration float64

	Permittivity []fdtd.Range
	Conductivity []fdtd.Range
	Dispersive   []fdtd.MaterialRegion

	Initial *Pulse
	Source  *Source
}

// Result captures the outcome of a completed run. All slices are
// copies, independent of the solver's live state.
type Result struct {
	FinalE  []float64
	FinalH  []float64
	EnergyE []float64
	EnergyH []float64
	Energy  []float64
	Steps   int
	Elapsed time.Duration
}

// Build constructs and configures a solver from the description.
func Build(cfg Config) (*fdtd.Solver, error) {
	if cfg.Cells < 2 {
		return nil, fmt.Errorf("scenario %q: %w", cfg.Name, fdtd.ErrGridTooSmall)
	}
	if cfg.XMax <= cfg.XMin {
		return nil, fmt.Errorf("scenario %q: domain [%g, %g] is empty", cfg.Name, cfg.XMin, cfg.XMax)
	}

	s, err := fdtd.New(fdtd.Linspace(cfg.XMin, cfg.XMax, cfg.Cells), cfg.Lower, cfg.Upper)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", cfg.Name, err)
	}

	s.SetPermittivityRegions(cfg.Permittivity)
	s.SetConductivityRegions(cfg.Conductivity)

	if len(cfg.Dispersive) > 0 {
		if err := s.SetMaterialRegions(cfg.Dispersive, cfg.Dt); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", cfg.Name, err)
		}
	}

	if p := cfg.Initial; p != nil {
		amp := p.Amplitude
		shape := fdtd.GaussianPulse(p.Center, p.Sigma)
		ic := fdtd.Sample(s.Grid().XE(), func(x float64) float64 { return amp * shape(x) })
		if err := s.SetInitialCondition(ic); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", cfg.Name, err)
		}
	}

	if src := cfg.Source; src != nil {
		if err := s.AddTotalField(src.Position, src.Waveform); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", cfg.Name, err)
		}
	}

	return s, nil
}

// Run advances the solver floor(Duration/Dt) steps, checking the
// context between steps. On cancellation the partial result is
// returned along with the context error.
func Run(ctx context.Context, s *fdtd.Solver, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 || cfg.Duration <= 0 {
		return nil, fdtd.ErrBadTimestep
	}

	start := time.Now()
	steps := int(cfg.Duration / cfg.Dt)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return snapshot(s, start), ctx.Err()
		default:
		}
		if err := s.Step(cfg.Dt); err != nil {
			return snapshot(s, start), err
		}
	}
	return snapshot(s, start), nil
}

func snapshot(s *fdtd.Solver, start time.Time) *Result {
	return &Result{
		FinalE:  clone(s.E()),
		FinalH:  clone(s.H()),
		EnergyE: clone(s.EnergyE()),
		EnergyH: clone(s.EnergyH()),
		Energy:  clone(s.Energy()),
		Steps:   s.Steps(),
		Elapsed: time.Since(start),
	}
}

func clone(xs []float64) []float64 {
	return append([]float64(nil), xs...)
}
