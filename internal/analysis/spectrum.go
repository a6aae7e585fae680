// Package analysis provides frequency-domain and amplitude diagnostics
// for recorded field series.
package analysis

import (
	"math"
	"math/cmplx"
)

// fft computes the radix-2 Cooley-Tukey transform. The input length
// must be a power of two; PowerSpectrum pads before calling.
func fft(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		return data
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	fe := fft(even)
	fo := fft(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		out[k] = fe[k] + w*fo[k]
		out[k+n/2] = fe[k] - w*fo[k]
	}
	return out
}

// NextPow2 returns the smallest power of two >= n (and at least 1).
func NextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// PowerSpectrum returns the magnitude of the first half of the FFT of
// the series, zero-padded to a power-of-two length.
func PowerSpectrum(series []float64) []float64 {
	padded := make([]complex128, NextPow2(len(series)))
	for i, v := range series {
		padded[i] = complex(v, 0)
	}

	out := fft(padded)
	ps := make([]float64, len(out)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(out[i])
	}
	return ps
}

// DominantFrequency returns the frequency of the strongest non-DC
// spectral line of a series sampled at interval dt.
func DominantFrequency(series []float64, dt float64) float64 {
	ps := PowerSpectrum(series)
	if len(ps) < 2 || dt <= 0 {
		return 0
	}

	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	n := 2 * len(ps) // padded series length
	return float64(maxIdx) / (float64(n) * dt)
}
