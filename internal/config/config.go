// Package config loads and saves YAML scenario descriptions and ships
// the built-in presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/emsim/internal/fdtd"
	"github.com/san-kum/emsim/internal/scenario"
)

const (
	DefaultCells    = 501
	DefaultDt       = 0.01
	DefaultDuration = 15.0
	DefaultSigma    = 0.5
)

type Config struct {
	Scenario     string             `yaml:"scenario"`
	Grid         GridConfig         `yaml:"grid"`
	Bounds       BoundsConfig       `yaml:"bounds"`
	Dt           float64            `yaml:"dt"`
	Duration     float64            `yaml:"duration"`
	Permittivity []RegionConfig     `yaml:"permittivity,omitempty"`
	Conductivity []RegionConfig     `yaml:"conductivity,omitempty"`
	Dispersive   []DispersiveConfig `yaml:"dispersive,omitempty"`
	Initial      *PulseConfig       `yaml:"initial,omitempty"`
	Source       *SourceConfig      `yaml:"source,omitempty"`
}

type GridConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Cells int     `yaml:"cells"`
}

type BoundsConfig struct {
	Lower string `yaml:"lower"`
	Upper string `yaml:"upper"`
}

type RegionConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Value float64 `yaml:"value"`
}

type DispersiveConfig struct {
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	EpsInf float64 `yaml:"eps_inf"`
	Cond   float64 `yaml:"cond"`
}

type PulseConfig struct {
	Center    float64 `yaml:"center"`
	Sigma     float64 `yaml:"sigma"`
	Amplitude float64 `yaml:"amplitude"`
}

type SourceConfig struct {
	Type      string  `yaml:"type"` // gaussian, sinusoid, ricker
	Position  float64 `yaml:"position"`
	Amplitude float64 `yaml:"amplitude"`
	Delay     float64 `yaml:"delay"`
	Sigma     float64 `yaml:"sigma"`
	Frequency float64 `yaml:"frequency"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "cavity",
		Grid:     GridConfig{Min: 0, Max: 10, Cells: DefaultCells},
		Bounds:   BoundsConfig{Lower: string(fdtd.PEC), Upper: string(fdtd.PEC)},
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Initial:  &PulseConfig{Center: 5, Sigma: DefaultSigma, Amplitude: 1},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToScenario converts the YAML-facing description into a runnable
// scenario config. Unknown source types are rejected here; boundary
// tokens pass through and are validated by the solver at step time.
func (c *Config) ToScenario() (scenario.Config, error) {
	out := scenario.Config{
		Name:     c.Scenario,
		XMin:     c.Grid.Min,
		XMax:     c.Grid.Max,
		Cells:    c.Grid.Cells,
		Lower:    fdtd.Boundary(c.Bounds.Lower),
		Upper:    fdtd.Boundary(c.Bounds.Upper),
		Dt:       c.Dt,
		Duration: c.Duration,
	}

	for _, r := range c.Permittivity {
		out.Permittivity = append(out.Permittivity, fdtd.Range{Start: r.Start, End: r.End, Value: r.Value})
	}
	for _, r := range c.Conductivity {
		out.Conductivity = append(out.Conductivity, fdtd.Range{Start: r.Start, End: r.End, Value: r.Value})
	}
	for _, r := range c.Dispersive {
		out.Dispersive = append(out.Dispersive, fdtd.MaterialRegion{
			Start: r.Start, End: r.End, EpsInf: r.EpsInf, Cond: r.Cond,
		})
	}

	if p := c.Initial; p != nil {
		amp := p.Amplitude
		if amp == 0 {
			amp = 1
		}
		out.Initial = &scenario.Pulse{Center: p.Center, Sigma: p.Sigma, Amplitude: amp}
	}

	if s := c.Source; s != nil {
		w, err := s.waveform()
		if err != nil {
			return scenario.Config{}, err
		}
		out.Source = &scenario.Source{Position: s.Position, Waveform: w}
	}

	return out, nil
}

func (s *SourceConfig) waveform() (fdtd.Waveform, error) {
	amp := s.Amplitude
	if amp == 0 {
		amp = 1
	}
	switch s.Type {
	case "gaussian":
		return fdtd.GaussianSource(amp, s.Delay, s.Sigma), nil
	case "sinusoid":
		return fdtd.SinusoidSource(amp, s.Frequency), nil
	case "ricker":
		return fdtd.RickerSource(amp, s.Frequency, s.Delay), nil
	default:
		return nil, fmt.Errorf("config: unknown source type %q", s.Type)
	}
}
