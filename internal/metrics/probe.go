// Package metrics provides per-step diagnostics layered on the
// solver's observer hook and its energy log.
package metrics

// Probe records the electric field at one grid index every step. It
// implements the solver's Observer interface.
type Probe struct {
	index  int
	times  []float64
	values []float64
}

func NewProbe(index int) *Probe {
	return &Probe{index: index}
}

func (p *Probe) OnStep(e, h []float64, t float64) {
	if p.index < 0 || p.index >= len(e) {
		return
	}
	p.times = append(p.times, t)
	p.values = append(p.values, e[p.index])
}

// Index returns the probed grid index.
func (p *Probe) Index() int { return p.index }

// Times returns the recorded sample times as a read-only view.
func (p *Probe) Times() []float64 { return p.times }

// Values returns the recorded field samples as a read-only view.
func (p *Probe) Values() []float64 { return p.values }

// Reset discards all recorded samples.
func (p *Probe) Reset() {
	p.times = p.times[:0]
	p.values = p.values[:0]
}
