package fdtd

// Physical constants in the solver's normalized unit system.
const (
	Mu0  = 1.0 // vacuum permeability
	Eps0 = 1.0 // vacuum permittivity
	C0   = 1.0 // vacuum wave speed, 1/sqrt(Mu0*Eps0)
)

// Boundary selects the update policy applied to one grid edge.
type Boundary string

const (
	PEC      Boundary = "pec"      // perfect electric conductor, E forced to 0
	Mur      Boundary = "mur"      // first-order absorbing boundary
	PMC      Boundary = "pmc"      // perfect magnetic conductor
	Periodic Boundary = "periodic" // wrap-around from the opposite interior node
)

// Boundaries lists every recognized boundary token.
func Boundaries() []Boundary {
	return []Boundary{PEC, Mur, PMC, Periodic}
}

// Waveform maps (position, time) to a field amplitude. Sources and
// time-dependent excitations are expressed as waveforms.
type Waveform func(x, t float64) float64

// Observer receives the field state once per completed step. The
// slices are views into solver-owned storage and must not be mutated
// or retained past the callback.
type Observer interface {
	OnStep(e, h []float64, t float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e, h []float64, t float64)

func (f ObserverFunc) OnStep(e, h []float64, t float64) { f(e, h, t) }
