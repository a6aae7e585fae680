package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/emsim/internal/fdtd"
	"github.com/san-kum/emsim/internal/scenario"
)

const (
	plotWidth       = 90
	plotHeight      = 16
	energyWidth     = 40
	energyHeight    = 5
	historyCapacity = 600
	maxSpeed        = 256
)

type TickMsg time.Time

// Model drives the live field view: it owns the solver and advances it a
// configurable number of leapfrog steps per animation frame.
type Model struct {
	cfg           scenario.Config
	solver        *fdtd.Solver
	stepsPerFrame int
	running       bool
	showHelp      bool
	err           error
}

// NewModel builds a solver from cfg and wraps it for interactive stepping.
func NewModel(cfg scenario.Config) (Model, error) {
	s, err := scenario.Build(cfg)
	if err != nil {
		return Model{}, err
	}
	return Model{
		cfg:           cfg,
		solver:        s,
		stepsPerFrame: 4,
		running:       true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the solver.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			if m.stepsPerFrame < maxSpeed {
				m.stepsPerFrame *= 2
			}
		case "-", "_":
			if m.stepsPerFrame > 1 {
				m.stepsPerFrame /= 2
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < m.stepsPerFrame; i++ {
				if err := m.solver.Step(m.cfg.Dt); err != nil {
					m.err = err
					m.running = false
					break
				}
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// reset rebuilds the solver from the original scenario.
func (m *Model) reset() {
	s, err := scenario.Build(m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.solver = s
	m.err = nil
	m.running = true
}

// View renders the E-field trace, the energy history, and a stats panel.
func (m Model) View() string {
	var s strings.Builder

	name := m.cfg.Name
	if name == "" {
		name = "simulation"
	}
	s.WriteString(headerStyle.Render(strings.ToUpper(name)) + "\n")

	status := "RUNNING"
	if m.err != nil {
		status = errorStyle.Render("ERROR: " + m.err.Error())
	} else if !m.running {
		status = pausedStyle.Render("PAUSED")
	}
	s.WriteString(status + "\n")

	field := resample(m.solver.E(), plotWidth)
	chart := asciigraph.Plot(field,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("Ez(x)"))
	s.WriteString(graphStyle.Render(chart) + "\n")

	if energy := m.solver.Energy(); len(energy) > 1 {
		hist := energy
		if len(hist) > historyCapacity {
			hist = hist[len(hist)-historyCapacity:]
		}
		eChart := asciigraph.Plot(resample(hist, energyWidth),
			asciigraph.Height(energyHeight),
			asciigraph.Width(energyWidth),
			asciigraph.Caption("Total energy"))
		s.WriteString(graphStyle.Render(eChart) + "\n")
	}

	s.WriteString(m.stats())
	s.WriteString(helpStyle.Render("SP:Pause  R:Reset  +/-:Speed  ?:Help  Q:Quit"))

	if m.showHelp {
		return m.helpView() + "\n" + s.String()
	}
	return s.String()
}

func (m Model) stats() string {
	bounds := m.solver.Bounds()
	var energyE, energyH, total float64
	if log := m.solver.EnergyE(); len(log) > 0 {
		energyE = log[len(log)-1]
	}
	if log := m.solver.EnergyH(); len(log) > 0 {
		energyH = log[len(log)-1]
	}
	if log := m.solver.Energy(); len(log) > 0 {
		total = log[len(log)-1]
	}

	var s strings.Builder
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.3f", m.solver.Time()))
	row("Steps", fmt.Sprintf("%d  (x%d/frame)", m.solver.Steps(), m.stepsPerFrame))
	row("Energy E", fmt.Sprintf("%.4g", energyE))
	row("Energy H", fmt.Sprintf("%.4g", energyH))
	row("Total", fmt.Sprintf("%.4g", total))
	row("Bounds", fmt.Sprintf("%s / %s", bounds[0], bounds[1]))
	if lo, hi, ok := m.solver.DispersiveSpan(); ok {
		x := m.solver.Grid().XE()
		row("Dispersive", regionStyle.Render(fmt.Sprintf("[%.2f, %.2f]", x[lo], x[hi-1])))
	}
	return s.String()
}

func (m Model) helpView() string {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Render(strings.Join([]string{
		"Space  pause / resume",
		"R      reset to initial state",
		"+ / -  double / halve steps per frame",
		"?      toggle this help",
		"Q      quit",
	}, "\n"))
}

// resample picks n evenly spaced samples so wide grids fit the terminal.
func resample(data []float64, n int) []float64 {
	if len(data) <= n {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*(len(data)-1)/(n-1)]
	}
	return out
}

// Run starts the interactive viewer and blocks until the user quits.
func Run(cfg scenario.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
