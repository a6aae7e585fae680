package config

import "sort"

// Presets are the built-in scenarios selectable by name from the CLI.
var Presets = map[string]*Config{
	"cavity": {
		Scenario: "cavity",
		Grid:     GridConfig{Min: 0, Max: 10, Cells: 501},
		Bounds:   BoundsConfig{Lower: "pec", Upper: "pec"},
		Dt:       0.01, Duration: 20.0,
		Initial: &PulseConfig{Center: 5, Sigma: 0.5, Amplitude: 1},
	},
	"interface": {
		Scenario: "interface",
		Grid:     GridConfig{Min: 0, Max: 40, Cells: 2001},
		Bounds:   BoundsConfig{Lower: "mur", Upper: "mur"},
		Dt:       0.01, Duration: 15.0,
		Permittivity: []RegionConfig{{Start: 26, End: 41, Value: 2.0}},
		Initial:      &PulseConfig{Center: 18, Sigma: 0.5, Amplitude: 1},
	},
	"absorbing": {
		Scenario: "absorbing",
		Grid:     GridConfig{Min: 0, Max: 10, Cells: 501},
		Bounds:   BoundsConfig{Lower: "mur", Upper: "mur"},
		Dt:       0.01, Duration: 15.0,
		Initial: &PulseConfig{Center: 5, Sigma: 0.5, Amplitude: 1},
	},
	"dispersive": {
		Scenario: "dispersive",
		Grid:     GridConfig{Min: 0, Max: 10, Cells: 501},
		Bounds:   BoundsConfig{Lower: "pec", Upper: "pec"},
		Dt:       0.01, Duration: 30.0,
		Dispersive: []DispersiveConfig{{Start: 6, End: 8, EpsInf: 2.0}},
		Initial:    &PulseConfig{Center: 3, Sigma: 0.5, Amplitude: 1},
	},
	"conducting": {
		Scenario: "conducting",
		Grid:     GridConfig{Min: 0, Max: 10, Cells: 501},
		Bounds:   BoundsConfig{Lower: "pec", Upper: "pec"},
		Dt:       0.01, Duration: 20.0,
		Conductivity: []RegionConfig{{Start: 6, End: 9, Value: 0.5}},
		Initial:      &PulseConfig{Center: 3, Sigma: 0.5, Amplitude: 1},
	},
	"driven": {
		Scenario: "driven",
		Grid:     GridConfig{Min: 0, Max: 10, Cells: 501},
		Bounds:   BoundsConfig{Lower: "mur", Upper: "mur"},
		Dt:       0.01, Duration: 20.0,
		Source: &SourceConfig{Type: "ricker", Position: 2.0, Amplitude: 0.05, Frequency: 1.0, Delay: 2.0},
	},
	"periodic": {
		Scenario: "periodic",
		Grid:     GridConfig{Min: 0, Max: 10, Cells: 501},
		Bounds:   BoundsConfig{Lower: "periodic", Upper: "periodic"},
		Dt:       0.01, Duration: 20.0,
		Initial: &PulseConfig{Center: 3, Sigma: 0.5, Amplitude: 1},
	},
}

// GetPreset returns the named preset, or nil when it does not exist.
// The returned value is a deep copy; mutating it, including its region
// slices and pulse/source settings, does not affect the table.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *p
	out.Permittivity = append([]RegionConfig(nil), p.Permittivity...)
	out.Conductivity = append([]RegionConfig(nil), p.Conductivity...)
	out.Dispersive = append([]DispersiveConfig(nil), p.Dispersive...)
	if p.Initial != nil {
		initial := *p.Initial
		out.Initial = &initial
	}
	if p.Source != nil {
		source := *p.Source
		out.Source = &source
	}
	return &out
}

// ListPresets returns all preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
