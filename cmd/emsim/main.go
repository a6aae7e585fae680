package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/emsim/internal/analysis"
	"github.com/san-kum/emsim/internal/config"
	"github.com/san-kum/emsim/internal/export"
	"github.com/san-kum/emsim/internal/metrics"
	"github.com/san-kum/emsim/internal/scenario"
	"github.com/san-kum/emsim/internal/storage"
	"github.com/san-kum/emsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	cells      int
	lower      string
	upper      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emsim",
		Short: "one-dimensional electromagnetic field simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".emsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a simulation and archive the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a simulation with live field visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the final field and energy log of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of the energy log",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the final field to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "render the final field to an SVG image",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenario presets",
		RunE:  listScenarios,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, scenariosCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset scenario")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().IntVar(&cells, "cells", config.DefaultCells, "number of grid nodes")
	cmd.Flags().StringVar(&lower, "lower", "", "lower boundary (pec, mur, pmc, periodic)")
	cmd.Flags().StringVar(&upper, "upper", "", "upper boundary")
}

// loadScenario resolves preset, config file, and flag overrides in that
// order; explicit flags win over both. A positional argument names a
// preset scenario.
func loadScenario(cmd *cobra.Command, args []string) (scenario.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 && preset == "" {
		preset = args[0]
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return scenario.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return scenario.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("cells") {
		cfg.Grid.Cells = cells
	}
	if cmd.Flags().Changed("lower") {
		cfg.Bounds.Lower = lower
	}
	if cmd.Flags().Changed("upper") {
		cfg.Bounds.Upper = upper
	}

	return cfg.ToScenario()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	solver, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s scenario...\n", cfg.Name)
	result, err := scenario.Run(context.Background(), solver, cfg)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, solver.Grid().XE(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps)
	if n := len(result.Energy); n > 0 {
		fmt.Println("\nenergy:")
		fmt.Printf("  electric: %.6g\n", result.EnergyE[n-1])
		fmt.Printf("  magnetic: %.6g\n", result.EnergyH[n-1])
		fmt.Printf("  total:    %.6g\n", result.Energy[n-1])
		fmt.Printf("  drift:    %.3g\n", metrics.Drift(result.Energy))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tCELLS\tBOUNDS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.4f\t%d\t%s/%s\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Cells,
			run.Lower,
			run.Upper,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	x, e, _, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	if len(e) == 0 {
		return fmt.Errorf("no field data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("steps: %d\n\n", meta.Steps)

	fmt.Println(viz.FieldChart(x, e, "final Ez(x)"))
	fmt.Println()

	_, _, _, energy, err := st.LoadEnergy(runID)
	if err != nil {
		return err
	}
	if chart := viz.EnergyChart(energy); chart != "" {
		fmt.Println(chart)
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, energyE, _, energy, err := st.LoadEnergy(runID)
	if err != nil {
		return err
	}
	if len(energyE) < 2 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)

	ps := analysis.PowerSpectrum(energyE)
	plotData := ps
	if len(ps) >= 8 {
		plotData = ps[:len(ps)/4]
	}

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (electric energy)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(energyE, meta.Dt)
	fmt.Printf("dominant frequency: %.4f\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.4f\n", 1.0/freq)
	}
	fmt.Printf("energy drift: %.3g\n", metrics.Drift(energy))
	fmt.Printf("energy residual: %.3g\n", metrics.Residual(energy))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	x, e, h, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	times, energyE, energyH, energy, err := st.LoadEnergy(runID)
	if err != nil {
		return err
	}

	out := struct {
		Meta    *storage.RunMetadata `json:"meta"`
		X       []float64            `json:"x"`
		E       []float64            `json:"e"`
		H       []float64            `json:"h"`
		Times   []float64            `json:"times"`
		EnergyE []float64            `json:"energy_e"`
		EnergyH []float64            `json:"energy_h"`
		Energy  []float64            `json:"energy"`
	}{meta, x, e, h, times, energyE, energyH, energy}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	x, e, h, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	if len(e) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "e", "h"}); err != nil {
		return err
	}
	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'f', 6, 64),
			strconv.FormatFloat(e[i], 'f', 6, 64),
		}
		if i < len(h) {
			row = append(row, strconv.FormatFloat(h[i], 'f', 6, 64))
		} else {
			row = append(row, "")
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID, outFile := args[0], args[1]

	st := storage.New(dataDir)
	x, e, _, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	svg := export.FieldToSVG(x, e, 800, 300, "#00ff00")
	if svg == "" {
		return fmt.Errorf("no data to render")
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func listScenarios(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDOMAIN\tCELLS\tBOUNDS\tDT\tDURATION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t[%g, %g]\t%d\t%s/%s\t%.4f\t%.1f\n",
			name,
			p.Grid.Min, p.Grid.Max,
			p.Grid.Cells,
			p.Bounds.Lower, p.Bounds.Upper,
			p.Dt, p.Duration,
		)
	}
	return w.Flush()
}
