package fdtd

import "math"

// GaussianPulse returns the spatial profile
// exp(-(x-center)^2 / (2*sigma^2)), typically sampled onto the grid as
// an initial condition.
func GaussianPulse(center, sigma float64) func(x float64) float64 {
	return func(x float64) float64 {
		d := x - center
		return math.Exp(-d * d / (2 * sigma * sigma))
	}
}

// GaussianSource returns a waveform peaking at t = delay with width
// sigma, independent of position.
func GaussianSource(amplitude, delay, sigma float64) Waveform {
	return func(_, t float64) float64 {
		d := t - delay
		return amplitude * math.Exp(-d*d/(2*sigma*sigma))
	}
}

// SinusoidSource returns a continuous-wave waveform of the given
// frequency, independent of position.
func SinusoidSource(amplitude, freq float64) Waveform {
	return func(_, t float64) float64 {
		return amplitude * math.Sin(2*math.Pi*freq*t)
	}
}

// RickerSource returns a Ricker (Mexican hat) wavelet centered at
// t = delay with peak frequency freq.
func RickerSource(amplitude, freq, delay float64) Waveform {
	return func(_, t float64) float64 {
		a := math.Pi * freq * (t - delay)
		a *= a
		return amplitude * (1 - 2*a) * math.Exp(-a)
	}
}
