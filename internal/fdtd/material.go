package fdtd

// Range assigns a material value to the half-open spatial interval
// [Start, End).
type Range struct {
	Start float64
	End   float64
	Value float64
}

// MaterialMap stores per-E-node relative permittivity (default 1) and
// conductivity (default 0).
type MaterialMap struct {
	eps  []float64
	cond []float64
}

func newMaterialMap(n int) *MaterialMap {
	m := &MaterialMap{
		eps:  make([]float64, n),
		cond: make([]float64, n),
	}
	for i := range m.eps {
		m.eps[i] = 1.0
	}
	return m
}

// Eps returns the per-node relative permittivity as a read-only view.
func (m *MaterialMap) Eps() []float64 { return m.eps }

// Cond returns the per-node conductivity as a read-only view.
func (m *MaterialMap) Cond() []float64 { return m.cond }

// assign resolves each range to E-node indices and writes the value
// over the half-open index interval. Ranges apply in input order, so
// later overlaps win. Degenerate or out-of-domain ranges resolve to
// empty intervals and write nothing.
func (m *MaterialMap) assign(g *Grid, target []float64, regions []Range) {
	for _, r := range regions {
		lo := g.searchE(r.Start)
		hi := g.searchE(r.End)
		for i := lo; i < hi && i < len(target); i++ {
			target[i] = r.Value
		}
	}
}
