package storage

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/emsim/internal/fdtd"
	"github.com/san-kum/emsim/internal/scenario"
)

func runCavity(t *testing.T) (scenario.Config, []float64, *scenario.Result) {
	t.Helper()
	cfg := scenario.Config{
		Name:     "cavity",
		XMin:     0,
		XMax:     10,
		Cells:    101,
		Lower:    fdtd.PEC,
		Upper:    fdtd.PEC,
		Dt:       0.05,
		Duration: 1.0,
		Initial:  &scenario.Pulse{Center: 5, Sigma: 0.5, Amplitude: 1},
	}
	s, err := scenario.Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	res, err := scenario.Run(context.Background(), s, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return cfg, s.Grid().XE(), res
}

func TestSaveLoadRoundtrip(t *testing.T) {
	cfg, xe, res := runCavity(t)

	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save(cfg, xe, res)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Scenario != "cavity" || meta.Steps != 20 || meta.Cells != 101 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Energy != res.Energy[len(res.Energy)-1] {
		t.Errorf("final energy mismatch: %f vs %f", meta.Energy, res.Energy[len(res.Energy)-1])
	}

	x, e, h, err := st.LoadField(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(x) != 101 || len(e) != 101 || len(h) != 100 {
		t.Fatalf("field lengths: %d/%d/%d", len(x), len(e), len(h))
	}
	for i := range e {
		if math.Abs(e[i]-res.FinalE[i]) > 1e-9 {
			t.Fatalf("field sample %d: %g vs %g", i, e[i], res.FinalE[i])
		}
	}

	times, eE, eH, en, err := st.LoadEnergy(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 20 || len(eE) != 20 || len(eH) != 20 || len(en) != 20 {
		t.Fatalf("energy lengths: %d/%d/%d/%d", len(times), len(eE), len(eH), len(en))
	}
	if math.Abs(en[5]-res.Energy[5]) > 1e-9 {
		t.Errorf("energy sample 5: %g vs %g", en[5], res.Energy[5])
	}
}

func TestListNewestFirst(t *testing.T) {
	cfg, xe, res := runCavity(t)

	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	first, err := st.Save(cfg, xe, res)
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.Save(cfg, xe, res)
	if err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("expected newest first, got %s then %s", runs[0].ID, runs[1].ID)
	}
}

func TestListEmptyStore(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}
