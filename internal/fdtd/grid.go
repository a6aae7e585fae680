package fdtd

import (
	"math"
	"sort"
)

// gridTolerance bounds the allowed relative deviation of node spacing.
const gridTolerance = 1e-9

// Grid holds the immutable E-node coordinates of a staggered 1D Yee
// grid and the derived H-node midpoints.
type Grid struct {
	xE []float64
	xH []float64
	dx float64
}

// NewGrid validates the E-node coordinates and derives H-node
// midpoints. Coordinates must be strictly increasing with uniform
// spacing and contain at least two points.
func NewGrid(xE []float64) (*Grid, error) {
	n := len(xE)
	if n < 2 {
		return nil, ErrGridTooSmall
	}

	dx := xE[1] - xE[0]
	if dx <= 0 {
		return nil, ErrNonUniform
	}
	for i := 1; i < n; i++ {
		step := xE[i] - xE[i-1]
		if step <= 0 || math.Abs(step-dx) > gridTolerance*math.Max(1, math.Abs(dx)) {
			return nil, ErrNonUniform
		}
	}

	g := &Grid{
		xE: append([]float64(nil), xE...),
		xH: make([]float64, n-1),
		dx: dx,
	}
	for i := 0; i < n-1; i++ {
		g.xH[i] = 0.5 * (xE[i] + xE[i+1])
	}
	return g, nil
}

// NumE returns the number of E-node samples.
func (g *Grid) NumE() int { return len(g.xE) }

// NumH returns the number of H-node samples.
func (g *Grid) NumH() int { return len(g.xH) }

// Dx returns the uniform node spacing.
func (g *Grid) Dx() float64 { return g.dx }

// XE returns the E-node coordinates. The slice is a read-only view.
func (g *Grid) XE() []float64 { return g.xE }

// XH returns the H-node midpoint coordinates. The slice is a read-only view.
func (g *Grid) XH() []float64 { return g.xH }

// searchE returns the index of the first E node whose coordinate is
// >= x, or NumE when every node lies below x.
func (g *Grid) searchE(x float64) int {
	return sort.SearchFloat64s(g.xE, x)
}

// searchAbove returns the index of the first E node strictly above x,
// or NumE when no node qualifies.
func (g *Grid) searchAbove(x float64) int {
	return sort.Search(len(g.xE), func(i int) bool { return g.xE[i] > x })
}

// Linspace builds n evenly spaced coordinates spanning [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// Sample evaluates a spatial profile at every coordinate.
func Sample(xs []float64, f func(x float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}
