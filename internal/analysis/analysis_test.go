package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumFindsSinusoid(t *testing.T) {
	n := 256
	dt := 0.01
	freq := 12.5 // bin 32 of a 256-point transform at 100 Hz sampling

	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(series, dt)
	if math.Abs(got-freq) > 0.5 {
		t.Errorf("expected dominant frequency near %f, got %f", freq, got)
	}
}

func TestPowerSpectrumPadsOddLengths(t *testing.T) {
	series := make([]float64, 100)
	series[0] = 1

	ps := PowerSpectrum(series)
	if len(ps) != 64 { // padded to 128, half retained
		t.Errorf("expected 64 bins, got %d", len(ps))
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {100, 128}, {1024, 1024},
	}
	for _, tt := range tests {
		if got := NextPow2(tt.in); got != tt.want {
			t.Errorf("NextPow2(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestFresnelCoefficients(t *testing.T) {
	r, tr := FresnelCoefficients(1.0, 2.0)

	wantR := (1 - math.Sqrt2) / (1 + math.Sqrt2)
	wantT := 2 / (1 + math.Sqrt2)
	if math.Abs(r-wantR) > 1e-12 || math.Abs(tr-wantT) > 1e-12 {
		t.Errorf("expected (%f, %f), got (%f, %f)", wantR, wantT, r, tr)
	}

	// Energy flux balance: R^2 + (n2/n1)*T^2 == 1.
	if flux := r*r + math.Sqrt2*tr*tr; math.Abs(flux-1) > 1e-12 {
		t.Errorf("flux balance violated: %f", flux)
	}

	if r, _ := FresnelCoefficients(4.0, 4.0); r != 0 {
		t.Errorf("matched media should not reflect, got r=%f", r)
	}
}

func TestMaxAbsBetween(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	f := []float64{9, -1, 5, -7, 9}

	if got := MaxAbsBetween(x, f, 0, 4); got != 7 {
		t.Errorf("expected 7 (endpoints excluded), got %f", got)
	}
	if got := MaxAbsBetween(x, f, 10, 20); got != 0 {
		t.Errorf("expected 0 for empty window, got %f", got)
	}
}
