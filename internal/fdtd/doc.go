// Package fdtd implements a one-dimensional finite-difference
// time-domain solver for Maxwell's equations on a staggered Yee grid.
//
// The package defines the building blocks of a simulation:
//
//   - [Grid]: immutable E-node coordinates and derived H-node midpoints
//   - [MaterialMap]: per-node relative permittivity and conductivity
//   - [MaterialRegion] + [PoleSet]: one frequency-dispersive medium
//     handled with the auxiliary differential equation (ADE) method
//   - [Solver]: leapfrog time stepping, boundary conditions, source
//     injection and per-step energy bookkeeping
//
// # Example
//
//	xe := fdtd.Linspace(0, 10, 201)
//	s, _ := fdtd.New(xe, fdtd.PEC, fdtd.PEC)
//	s.SetInitialCondition(fdtd.Sample(xe, fdtd.GaussianPulse(5, 0.5)))
//	final, _ := s.RunUntil(20, 0.5*s.Dx())
//
// # Units
//
// The solver works in normalized units: vacuum permittivity,
// permeability and wave speed are all 1. The caller is responsible for
// choosing a time step that satisfies the Courant bound (dt <= dx/C0
// in unit-speed media); no stability enforcement is performed.
//
// # Thread Safety
//
// Solver instances are NOT thread-safe. All state belongs to a single
// instance and steps must be externally serialized.
package fdtd
