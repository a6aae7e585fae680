// Package storage archives completed runs: metadata as JSON plus the
// energy series and final field as CSV, one directory per run.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/emsim/internal/scenario"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Duration  float64   `json:"duration"`
	Cells     int       `json:"cells"`
	Lower     string    `json:"lower_bound"`
	Upper     string    `json:"upper_bound"`
	Steps     int       `json:"steps"`
	FinalECSV string    `json:"field_file"`
	EnergyCSV string    `json:"energy_file"`
	EnergyE   float64   `json:"final_energy_e"`
	EnergyH   float64   `json:"final_energy_h"`
	Energy    float64   `json:"final_energy"`
}

// Save archives one run and returns its generated ID.
func (s *Store) Save(cfg scenario.Config, xE []float64, res *scenario.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Name, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  cfg.Name,
		Timestamp: time.Now(),
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		Cells:     cfg.Cells,
		Lower:     string(cfg.Lower),
		Upper:     string(cfg.Upper),
		Steps:     res.Steps,
		FinalECSV: "field.csv",
		EnergyCSV: "energy.csv",
	}
	if n := len(res.Energy); n > 0 {
		meta.EnergyE = res.EnergyE[n-1]
		meta.EnergyH = res.EnergyH[n-1]
		meta.Energy = res.Energy[n-1]
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeFieldCSV(filepath.Join(runDir, meta.FinalECSV), xE, res.FinalE, res.FinalH); err != nil {
		return "", err
	}
	if err := writeEnergyCSV(filepath.Join(runDir, meta.EnergyCSV), cfg.Dt, res); err != nil {
		return "", err
	}
	return runID, nil
}

// Load reads a run's metadata by ID.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// List returns metadata for every archived run, newest first.
func (s *Store) List() ([]*RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []*RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip directories without valid metadata
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// LoadEnergy reads back the per-step energy series of a run.
func (s *Store) LoadEnergy(runID string) (times, energyE, energyH, energy []float64, err error) {
	rows, err := readCSV(filepath.Join(s.baseDir, runID, "energy.csv"), 4)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return rows[0], rows[1], rows[2], rows[3], nil
}

// LoadField reads back the final field arrays of a run. The H column
// is one row shorter than E; its missing tail entry is dropped.
func (s *Store) LoadField(runID string) (x, e, h []float64, err error) {
	rows, err := readCSV(filepath.Join(s.baseDir, runID, "field.csv"), 3)
	if err != nil {
		return nil, nil, nil, err
	}
	x, e = rows[0], rows[1]
	if h = rows[2]; len(h) > 0 {
		h = h[:len(h)-1]
	}
	return x, e, h, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFieldCSV(path string, xE, e, h []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"x", "e", "h"}); err != nil {
		return err
	}
	for i := range e {
		hv := 0.0 // H grid is one sample shorter
		if i < len(h) {
			hv = h[i]
		}
		row := []string{
			formatFloat(xE[i]),
			formatFloat(e[i]),
			formatFloat(hv),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeEnergyCSV(path string, dt float64, res *scenario.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "energy_e", "energy_h", "energy"}); err != nil {
		return err
	}
	for i := range res.Energy {
		row := []string{
			formatFloat(float64(i+1) * dt),
			formatFloat(res.EnergyE[i]),
			formatFloat(res.EnergyH[i]),
			formatFloat(res.Energy[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func readCSV(path string, cols int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("storage: %s is empty", path)
	}

	out := make([][]float64, cols)
	for _, rec := range records[1:] { // skip header
		for c := 0; c < cols && c < len(rec); c++ {
			v, err := strconv.ParseFloat(rec[c], 64)
			if err != nil {
				return nil, err
			}
			out[c] = append(out[c], v)
		}
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}
