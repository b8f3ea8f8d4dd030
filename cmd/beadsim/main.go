package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/beadsim/internal/automation"
	"github.com/san-kum/beadsim/internal/beads"
	"github.com/san-kum/beadsim/internal/config"
	"github.com/san-kum/beadsim/internal/export"
	"github.com/san-kum/beadsim/internal/storage"
	"github.com/san-kum/beadsim/internal/trace"
	"github.com/san-kum/beadsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	algorithm  string
	fps        int
	theme      string
	save       bool
	showTrace  bool
	verbose    bool
	sweepMinN  int
	sweepMaxN  int
	sweepSteps int
	sweepMax   int
	seed       int64
	frameIdx   int
	svgScale   float64
)

// main builds the beadsim CLI and exits with status 1 on any error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, beads.ErrInvalidInput) {
			fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "beadsim",
		Short:         "bead sort simulator and visualiser",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	sortCmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "sort values and print the result",
		RunE:  runSort,
	}
	addInputFlags(sortCmd)
	sortCmd.Flags().BoolVar(&save, "save", false, "save the trace to the data directory")
	sortCmd.Flags().BoolVar(&showTrace, "trace", false, "print every frame")

	liveCmd := &cobra.Command{
		Use:   "live [values...]",
		Short: "replay the sort in the terminal",
		RunE:  runLive,
	}
	addInputFlags(liveCmd)
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available input presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				fmt.Fprintf(out, "  %-10s %v\n", name, config.Presets[name])
			}
			return nil
		},
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range beads.NewRegistry().Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a frame of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&frameIdx, "frame", -1, "frame index (default: last)")
	exportSVGCmd.Flags().Float64Var(&svgScale, "scale", 12, "pixels per bead")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted batch of sorts",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sort random inputs of growing size",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "sorting algorithm")
	sweepCmd.Flags().IntVar(&sweepMinN, "min-n", 10, "smallest input length")
	sweepCmd.Flags().IntVar(&sweepMaxN, "max-n", 100, "largest input length")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of sweep points")
	sweepCmd.Flags().IntVar(&sweepMax, "max-value", 50, "largest random value")
	sweepCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	rootCmd.AddCommand(sortCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, algorithmsCmd, batchCmd, sweepCmd)
	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset input")
	cmd.Flags().StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "sorting algorithm")
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig merges the config file, preset, positional values and flags,
// in increasing order of precedence.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		slog.Debug("config loaded", "path", configFile)
	}

	if preset != "" {
		values := config.GetPreset(preset)
		if values == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Values = values
	}

	if len(args) > 0 {
		values, err := config.ParseValues(strings.Join(args, " "))
		if err != nil {
			return nil, err
		}
		cfg.Values = values
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") || configFile == "" {
		cfg.Algorithm = algorithm
	}
	if flags.Lookup("fps") != nil && (flags.Changed("fps") || configFile == "") {
		cfg.FPS = fps
	}
	if flags.Lookup("theme") != nil && (flags.Changed("theme") || configFile == "") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func record(ctx context.Context, cfg *config.Config) (*trace.Trace, error) {
	algo, err := beads.NewRegistry().Get(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	slog.Debug("sorting", "algorithm", cfg.Algorithm, "n", len(cfg.Values), "expected_events", beads.EventCount(cfg.Values))
	start := time.Now()
	tr, err := trace.Record(ctx, cfg.Algorithm, algo, cfg.Values)
	if err != nil {
		return nil, err
	}
	slog.Debug("sort finished", "events", tr.Stats.Total, "elapsed", time.Since(start))

	if err := tr.Verify(); err != nil {
		return nil, err
	}
	return tr, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	tr, err := record(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showTrace {
		if err := tr.WriteText(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "input:  %v\n", tr.Input)
	fmt.Fprintf(out, "output: %v\n", tr.Output)
	fmt.Fprintln(out, "\nevents:")
	fmt.Fprintf(out, "  place:   %d\n", tr.Stats.Place)
	fmt.Fprintf(out, "  gravity: %d\n", tr.Stats.Gravity)
	fmt.Fprintf(out, "  collect: %d\n", tr.Stats.Collect)
	fmt.Fprintf(out, "  total:   %d\n", tr.Stats.Total)

	if save {
		dir := cfg.DataDir
		if cmd.Flags().Changed("data") || configFile == "" {
			dir = dataDir
		}
		st := storage.New(dir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(tr)
		if err != nil {
			return err
		}
		slog.Info("run saved", "id", runID)
		fmt.Fprintf(out, "\nrun id: %s\n", runID)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	tr, err := record(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Theme)
	p := tea.NewProgram(viz.NewPlayer(tr, cfg.FPS))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tN\tEVENTS\tINPUT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Input),
			run.Stats.Total,
			abbreviate(run.Input, 8),
		)
	}

	return w.Flush()
}

func abbreviate(values []int, limit int) string {
	if len(values) <= limit {
		return fmt.Sprint(values)
	}
	s := fmt.Sprint(values[:limit])
	return s[:len(s)-1] + " ...]"
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(meta.Input) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "algorithm: %s\n", meta.Algorithm)
	fmt.Fprintf(out, "frames: %d\n\n", len(frames))

	fmt.Fprintln(out, viz.PlotValues(meta.Input, "input"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.PlotValues(meta.Output, "output"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.PlotInversions(frames))

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.WriteCSV(cmd.OutOrStdout(), len(frames[0].Values), frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(cmd.OutOrStdout(), meta, frames)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	idx := frameIdx
	if idx < 0 {
		idx = len(frames) - 1
	}
	svg, err := export.FrameSVG(frames, idx, svgScale)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), svg)
	return err
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	slog.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))
	results, err := automation.RunScenario(cmd.Context(), scenario, beads.NewRegistry(), st)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tALGORITHM\tN\tEVENTS\tOUTPUT\tRUN")
	for i, r := range results {
		runID := r.RunID
		if runID == "" {
			runID = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\n",
			i+1,
			r.Trace.Algorithm,
			len(r.Trace.Input),
			r.Trace.Stats.Total,
			abbreviate(r.Trace.Output, 8),
			runID,
		)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweep := &automation.SizeSweep{
		Algorithm: algorithm,
		MinN:      sweepMinN,
		MaxN:      sweepMaxN,
		NumSteps:  sweepSteps,
		MaxValue:  sweepMax,
		Seed:      seed,
	}

	results, err := automation.RunSweep(cmd.Context(), sweep, beads.NewRegistry())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sweeping %s (seed=%d)\n\n", algorithm, seed)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tMAX\tSUM\tEVENTS\tTIME")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%v\n", r.N, r.MaxVal, r.Sum, r.Events, r.Elapsed)
	}
	return w.Flush()
}
