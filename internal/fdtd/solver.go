package fdtd

import "fmt"

const (
	lowerEdge = 0
	upperEdge = 1
)

type source struct {
	index    int
	waveform Waveform
}

// Solver owns the complete state of one simulation: grid, materials,
// field arrays, auxiliary dispersive currents, the registered source,
// the energy log and the simulation clock.
type Solver struct {
	grid   *Grid
	mat    *MaterialMap
	bounds [2]Boundary
	poles  PoleSet

	e    []float64
	h    []float64
	hOld []float64 // H as of the previous step, kept for energy pairing
	eOld []float64 // staging buffer for the pre-step E snapshot

	disp   *dispersion
	source *source

	observers []Observer

	energyE []float64
	energyH []float64
	energy  []float64

	time  float64
	steps int
}

// New builds a solver over the given E-node coordinates with one
// boundary policy per edge. Boundary tokens are validated lazily: an
// unrecognized token fails the first Step that applies it.
func New(xE []float64, lower, upper Boundary) (*Solver, error) {
	g, err := NewGrid(xE)
	if err != nil {
		return nil, err
	}
	n := g.NumE()
	return &Solver{
		grid:   g,
		mat:    newMaterialMap(n),
		bounds: [2]Boundary{lower, upper},
		poles:  SilverPoleSet(),
		e:      make([]float64, n),
		h:      make([]float64, n-1),
		hOld:   make([]float64, n-1),
		eOld:   make([]float64, n),
	}, nil
}

// Grid returns the solver's grid.
func (s *Solver) Grid() *Grid { return s.grid }

// Dx returns the uniform node spacing.
func (s *Solver) Dx() float64 { return s.grid.dx }

// Bounds returns the per-edge boundary policies.
func (s *Solver) Bounds() [2]Boundary { return s.bounds }

// E returns the electric field samples as a read-only view.
func (s *Solver) E() []float64 { return s.e }

// H returns the magnetic field samples as a read-only view.
func (s *Solver) H() []float64 { return s.h }

// Time returns the simulation clock.
func (s *Solver) Time() float64 { return s.time }

// Steps returns the number of completed steps.
func (s *Solver) Steps() int { return s.steps }

// EnergyE returns the per-step electric energy series (read-only view).
func (s *Solver) EnergyE() []float64 { return s.energyE }

// EnergyH returns the per-step magnetic energy series (read-only view).
func (s *Solver) EnergyH() []float64 { return s.energyH }

// Energy returns the per-step total energy series (read-only view).
func (s *Solver) Energy() []float64 { return s.energy }

// Materials returns the solver's material map.
func (s *Solver) Materials() *MaterialMap { return s.mat }

// SetInitialCondition overwrites the electric field.
func (s *Solver) SetInitialCondition(values []float64) error {
	if len(values) != len(s.e) {
		return ErrDimension
	}
	copy(s.e, values)
	return nil
}

// SetPermittivityRegions assigns relative permittivity over spatial
// ranges, in input order; later overlaps win. Out-of-domain or
// degenerate ranges write nothing.
func (s *Solver) SetPermittivityRegions(regions []Range) {
	s.mat.assign(s.grid, s.mat.eps, regions)
}

// SetConductivityRegions assigns conductivity over spatial ranges with
// the same resolution rules as SetPermittivityRegions.
func (s *Solver) SetConductivityRegions(regions []Range) {
	s.mat.assign(s.grid, s.mat.cond, regions)
}

// SetPoleSet replaces the pole-residue pairs used by subsequently
// configured dispersive regions.
func (s *Solver) SetPoleSet(p PoleSet) { s.poles = p }

// SetMaterialRegions configures the dispersive medium. The solver
// supports exactly one region per run: passing more than one, or
// calling twice, fails with ErrRegionConfigured. The dt must equal the
// dt later passed to Step/RunUntil; the recursion coefficients are
// only valid for that value.
func (s *Solver) SetMaterialRegions(regions []MaterialRegion, dt float64) error {
	if len(regions) == 0 {
		return nil
	}
	if len(regions) > 1 || s.disp != nil {
		return ErrRegionConfigured
	}
	if dt <= 0 {
		return ErrBadTimestep
	}
	s.disp = newDispersion(s.grid, s.poles, regions[0], dt)
	return nil
}

// AuxiliaryCurrents returns the per-pole auxiliary polarization
// currents as read-only views, or nil when no dispersive region is
// configured.
func (s *Solver) AuxiliaryCurrents() [][]complex128 {
	if s.disp == nil {
		return nil
	}
	out := make([][]complex128, NumPoles)
	for p := range s.disp.j {
		out[p] = s.disp.j[p]
	}
	return out
}

// DispersiveSpan reports the active dispersive E-node span [lo, hi),
// if a region is configured.
func (s *Solver) DispersiveSpan() (lo, hi int, ok bool) {
	if s.disp == nil {
		return 0, 0, false
	}
	return s.disp.iIn, s.disp.iOut, true
}

// AddTotalField registers an additive total-field source at the first
// E node whose coordinate exceeds position. The solver honors exactly
// one source: a second registration fails with ErrSourceConfigured.
// Positions beyond the grid resolve to nothing and are ignored.
func (s *Solver) AddTotalField(position float64, w Waveform) error {
	if s.source != nil {
		return ErrSourceConfigured
	}
	idx := s.grid.searchAbove(position)
	if w == nil || idx >= s.grid.NumH() {
		return nil
	}
	s.source = &source{index: idx, waveform: w}
	return nil
}

// AddObserver registers a per-step observer. Observers run after the
// step completes, outside the update path.
func (s *Solver) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Step advances the simulation by one leapfrog cycle:
// H update, source injection, half-step clock advance, E update
// (plain or dispersive), source injection, second half-step advance,
// boundary conditions, energy accounting.
func (s *Solver) Step(dt float64) error {
	n := len(s.e)
	dx := s.grid.dx

	if s.disp != nil && s.disp.dt != dt {
		return &StepError{Step: s.steps, Time: s.time, Wrapped: ErrBadTimestep}
	}

	// Pre-update interior neighbors, needed by the Mur boundaries.
	eOldLeft := s.e[1]
	eOldRight := s.e[n-2]

	// H reads only E and must be fully updated, source included,
	// before any E node is written.
	for i := range s.h {
		s.h[i] -= dt / (dx * Mu0) * (s.e[i+1] - s.e[i])
	}
	if s.source != nil {
		i := s.source.index
		s.h[i] += s.source.waveform(s.grid.xH[i], s.time)
	}
	s.time += dt / 2

	if s.disp == nil {
		s.updatePlainE(dt, 1, n-1)
	} else {
		// The J recursion needs E as it stood before any in-place
		// mutation, so snapshot the full array first.
		copy(s.eOld, s.e)
		d := s.disp
		s.updatePlainE(dt, 1, d.iIn)
		for i := d.iIn; i < d.iOut; i++ {
			curl := (s.h[i] - s.h[i-1]) / dx
			s.e[i] = d.coef*s.e[i] + (2*dt/d.denom)*(-curl-d.jSum(i))
		}
		s.updatePlainE(dt, d.iOut, n-1)
		d.advance(s.e, s.eOld)
	}

	if s.source != nil {
		i := s.source.index
		s.e[i] += s.source.waveform(s.grid.xE[i], s.time)
	}
	s.time += dt / 2

	if err := s.applyBoundary(lowerEdge, dt, eOldLeft); err != nil {
		return &StepError{Step: s.steps, Time: s.time, Wrapped: err}
	}
	if err := s.applyBoundary(upperEdge, dt, eOldRight); err != nil {
		return &StepError{Step: s.steps, Time: s.time, Wrapped: err}
	}

	s.accumulateEnergy()
	s.steps++

	for _, obs := range s.observers {
		obs.OnStep(s.e, s.h, s.time)
	}
	return nil
}

// updatePlainE applies the lossy non-dispersive update to E nodes in
// [lo, hi). Callers keep lo >= 1 and hi <= NumE-1 so the edges remain
// owned by the boundary policies.
func (s *Solver) updatePlainE(dt float64, lo, hi int) {
	dx := s.grid.dx
	for i := lo; i < hi; i++ {
		a := s.mat.eps[i] / dt
		b := s.mat.cond[i] / 2
		s.e[i] = ((a-b)*s.e[i] - (s.h[i]-s.h[i-1])/dx) / (a + b)
	}
}

func (s *Solver) applyBoundary(edge int, dt, eOldNeighbor float64) error {
	n := len(s.e)
	dx := s.grid.dx

	switch b := s.bounds[edge]; b {
	case PEC:
		if edge == lowerEdge {
			s.e[0] = 0
		} else {
			s.e[n-1] = 0
		}
	case Mur:
		coef := (C0*dt - dx) / (C0*dt + dx)
		if edge == lowerEdge {
			s.e[0] = eOldNeighbor + coef*(s.e[1]-s.e[0])
		} else {
			s.e[n-1] = eOldNeighbor + coef*(s.e[n-2]-s.e[n-1])
		}
	case PMC:
		if edge == lowerEdge {
			s.e[0] -= 2 * dt / (dx * Eps0) * s.h[0]
		} else {
			s.e[n-1] += 2 * dt / (dx * Eps0) * s.h[len(s.h)-1]
		}
	case Periodic:
		if edge == lowerEdge {
			s.e[0] = s.e[n-2]
		} else {
			s.e[n-1] = s.e[1]
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBoundary, string(b))
	}
	return nil
}

// accumulateEnergy appends the leapfrog-consistent energy estimate:
// E at time t paired with H averaged across t-dt/2 and t+dt/2 via the
// hOld*h product.
func (s *Solver) accumulateEnergy() {
	dx := s.grid.dx
	var eE, eH float64
	for i, e := range s.e {
		eE += e * dx * s.mat.eps[i] * e
	}
	for i, h := range s.h {
		eH += s.hOld[i] * dx * Mu0 * h
	}
	eE *= 0.5
	eH *= 0.5
	s.energyE = append(s.energyE, eE)
	s.energyH = append(s.energyH, eH)
	s.energy = append(s.energy, eE+eH)
	copy(s.hOld, s.h)
}

// RunUntil advances the simulation floor(tf/dt) steps and returns the
// final electric field as a read-only view. No stability enforcement
// is performed; the caller must choose dt within the Courant bound.
func (s *Solver) RunUntil(tf, dt float64) ([]float64, error) {
	if dt <= 0 {
		return nil, ErrBadTimestep
	}
	steps := int(tf / dt)
	for i := 0; i < steps; i++ {
		if err := s.Step(dt); err != nil {
			return s.e, err
		}
	}
	return s.e, nil
}
