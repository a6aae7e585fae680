package fdtd

import (
	"errors"
	"math"
	"testing"
)

func TestNewGridMidpoints(t *testing.T) {
	g, err := NewGrid([]float64{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.NumE() != 4 || g.NumH() != 3 {
		t.Errorf("expected 4 E nodes and 3 H nodes, got %d and %d", g.NumE(), g.NumH())
	}
	if g.Dx() != 1.0 {
		t.Errorf("expected dx 1.0, got %f", g.Dx())
	}

	want := []float64{0.5, 1.5, 2.5}
	for i, x := range g.XH() {
		if math.Abs(x-want[i]) > 1e-12 {
			t.Errorf("midpoint %d: expected %f, got %f", i, want[i], x)
		}
	}
}

func TestNewGridRejectsBadCoordinates(t *testing.T) {
	tests := []struct {
		name string
		xE   []float64
		want error
	}{
		{"too short", []float64{1.0}, ErrGridTooSmall},
		{"empty", nil, ErrGridTooSmall},
		{"decreasing", []float64{0, 1, 0.5}, ErrNonUniform},
		{"duplicate", []float64{0, 1, 1, 2}, ErrNonUniform},
		{"non-uniform", []float64{0, 1, 2, 4}, ErrNonUniform},
	}

	for _, tt := range tests {
		if _, err := NewGrid(tt.xE); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestGridIsImmutable(t *testing.T) {
	xs := []float64{0, 0.5, 1.0}
	g, err := NewGrid(xs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xs[1] = 99
	if g.XE()[1] != 0.5 {
		t.Error("grid aliases the caller's coordinate slice")
	}
}

func TestSearchAbove(t *testing.T) {
	g, _ := NewGrid(Linspace(0, 10, 11))

	tests := []struct {
		x    float64
		want int
	}{
		{-1, 0},
		{0, 1},   // strictly above, node at 0 excluded
		{2.5, 3},
		{10, 11}, // nothing above the last node
		{99, 11},
	}

	for _, tt := range tests {
		if got := g.searchAbove(tt.x); got != tt.want {
			t.Errorf("searchAbove(%f): expected %d, got %d", tt.x, tt.want, got)
		}
	}
}

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 1, 5)
	if len(xs) != 5 {
		t.Fatalf("expected 5 points, got %d", len(xs))
	}
	if xs[0] != 0 || xs[4] != 1 {
		t.Errorf("endpoints not honored: %v", xs)
	}
	if math.Abs(xs[2]-0.5) > 1e-12 {
		t.Errorf("expected midpoint 0.5, got %f", xs[2])
	}
}
