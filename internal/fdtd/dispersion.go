package fdtd

import (
	"math"
	"math/cmplx"
)

// NumPoles is the fixed pole count of the dispersion model.
const NumPoles = 6

// Pole is one complex residue/pole pair of a multi-pole permittivity
// fit. Location must have a negative real part for a passive medium.
type Pole struct {
	Residue  complex128 // c_p
	Location complex128 // a_p
}

// PoleSet holds the fixed pole-residue pairs shared by all dispersive
// regions of a run.
type PoleSet [NumPoles]Pole

// SilverPoleSet returns a six-pole (three conjugate pairs) fit of the
// permittivity of silver, rescaled to the solver's normalized unit
// system. A strong low-frequency resonance stands in for the Drude
// branch; the other two pairs model interband transitions. Each pair
// is a passive Lorentz resonance, so the resulting medium only absorbs.
func SilverPoleSet() PoleSet {
	var p PoleSet
	copy(p[0:2], lorentzPair(3.0, 1.2, 0.1))
	copy(p[2:4], lorentzPair(0.8, 3.0, 0.3))
	copy(p[4:6], lorentzPair(0.5, 5.5, 0.5))
	return p
}

// lorentzPair converts one Lorentz resonance (oscillator strength
// deps, center frequency w0, damping delta) into its conjugate
// residue/pole pair for the susceptibility sum c/(jw-a) + c*/(jw-a*).
func lorentzPair(deps, w0, delta float64) []Pole {
	w1 := math.Sqrt(w0*w0 - delta*delta)
	c := complex(0, -deps*w0*w0/(2*w1))
	a := complex(-delta, w1)
	return []Pole{
		{Residue: c, Location: a},
		{Residue: cmplx.Conj(c), Location: cmplx.Conj(a)},
	}
}

// MaterialRegion is the spatial extent and background parameters of a
// frequency-dispersive medium.
type MaterialRegion struct {
	Start  float64
	End    float64
	EpsInf float64 // infinite-frequency relative permittivity
	Cond   float64
}

// dispersion holds the per-pole recursion coefficients for one region
// and the persistent auxiliary polarization currents. Coefficients are
// derived from a trapezoidal discretization of each pole's first-order
// polarization ODE, so the recursion needs no stored field history.
// They are valid only for the dt they were built with.
type dispersion struct {
	region MaterialRegion
	dt     float64

	k    [NumPoles]complex128
	beta [NumPoles]complex128

	denom float64
	coef  float64

	// Active E-node span [iIn, iOut), clipped to the interior so the
	// edge nodes stay owned by the boundary policies.
	iIn, iOut int

	// Auxiliary currents, pole-major over the full E grid.
	j [NumPoles][]complex128
}

func newDispersion(g *Grid, poles PoleSet, region MaterialRegion, dt float64) *dispersion {
	d := &dispersion{region: region, dt: dt}

	s := 2 * Eps0 * region.EpsInf
	for p, pole := range poles {
		den := 1 - pole.Location*complex(dt/2, 0)
		d.k[p] = (1 + pole.Location*complex(dt/2, 0)) / den
		d.beta[p] = complex(Eps0*dt, 0) * pole.Residue / den
		s += 2 * real(d.beta[p])
	}
	d.denom = s + region.Cond*dt
	d.coef = (s - region.Cond*dt) / d.denom

	// Normalize the span to interior nodes. Degenerate or out-of-domain
	// regions collapse to an empty span so the plain update still covers
	// every interior node exactly once.
	d.iIn = clampSpan(g.searchE(region.Start), g.NumE())
	d.iOut = clampSpan(g.searchE(region.End), g.NumE())
	if d.iIn > d.iOut {
		d.iIn = d.iOut
	}

	for p := range d.j {
		d.j[p] = make([]complex128, g.NumE())
	}
	return d
}

// clampSpan bounds a resolved node index to the interior [1, n-1].
func clampSpan(i, n int) int {
	if i < 1 {
		return 1
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// jSum accumulates Re[(1+k_p)*J_p[i]] over all poles using the
// pre-update auxiliary currents.
func (d *dispersion) jSum(i int) float64 {
	sum := 0.0
	for p := range d.j {
		sum += real((1 + d.k[p]) * d.j[p][i])
	}
	return sum
}

// advance recurses every pole's auxiliary current over the full grid.
// eOld must be the pre-step E snapshot, not the updated array.
func (d *dispersion) advance(e, eOld []float64) {
	inv := complex(1/d.dt, 0)
	for p := range d.j {
		jp := d.j[p]
		kp, bp := d.k[p], d.beta[p]
		for i := range jp {
			jp[i] = kp*jp[i] + bp*complex(e[i]-eOld[i], 0)*inv
		}
	}
}
