package analysis

import "math"

// FresnelCoefficients returns the analytic amplitude reflection and
// transmission coefficients for a normal-incidence step between two
// lossless media of relative permittivities eps1 and eps2.
func FresnelCoefficients(eps1, eps2 float64) (r, t float64) {
	n1 := math.Sqrt(eps1)
	n2 := math.Sqrt(eps2)
	r = (n1 - n2) / (n1 + n2)
	t = 2 * n1 / (n1 + n2)
	return r, t
}

// MaxAbs returns the largest absolute value of the series.
func MaxAbs(series []float64) float64 {
	m := 0.0
	for _, v := range series {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// MaxAbsBetween returns the largest |field| sample whose coordinate
// falls inside (lo, hi). The coordinate and field slices run parallel.
func MaxAbsBetween(x, field []float64, lo, hi float64) float64 {
	m := 0.0
	for i, xi := range x {
		if xi <= lo || xi >= hi || i >= len(field) {
			continue
		}
		if a := math.Abs(field[i]); a > m {
			m = a
		}
	}
	return m
}
