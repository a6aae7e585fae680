package metrics

import "math"

// Drift returns the maximum relative deviation of a series from its
// first entry. A zero-valued or empty series reports zero drift.
func Drift(series []float64) float64 {
	if len(series) == 0 || series[0] == 0 {
		return 0
	}
	first := series[0]
	max := 0.0
	for _, v := range series {
		if d := math.Abs(v-first) / math.Abs(first); d > max {
			max = d
		}
	}
	return max
}

// Residual returns the ratio of the last entry of a series to its
// first, a measure of how much energy a run retained.
func Residual(series []float64) float64 {
	if len(series) == 0 || series[0] == 0 {
		return 0
	}
	return series[len(series)-1] / series[0]
}
