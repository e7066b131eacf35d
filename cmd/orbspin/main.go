package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/san-kum/orbspin/internal/config"
	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/pipeline"
	"github.com/san-kum/orbspin/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	dataDir    string
	verbose    bool

	numBodies  int
	maxPoints  int
	gravConst  float64
	resMass    float64
	trackAxes  bool
	precFrame  string
	angleScale float64

	tmin, tmax  float64
	resJ, resDJ int
	theme       string

	plotPanels  bool
	svgFile     string
	jsonFile    string
	csvFile     string
	metricsFile string
	save        bool

	target    int
	rows      int
	section   bool
	showPower bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "orbspin",
		Short:         "orbital and spin analysis of N-body output",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "preset as system/name")
	pf.StringVar(&dataDir, "data", ".orbspin", "run archive directory")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.IntVar(&numBodies, "bodies", config.DefaultBodies, "number of point masses, the centre included")
	pf.IntVar(&maxPoints, "max-points", config.DefaultMaxPoints, "cap on sampled points")
	pf.Float64Var(&gravConst, "grav-const", config.DefaultGravConst, "gravitational constant")
	pf.Float64Var(&resMass, "resolved-mass", config.DefaultResolvedMass, "mass of the resolved body")
	pf.BoolVar(&trackAxes, "track-axes", false, "keep principal axis signs continuous between samples")
	pf.StringVar(&precFrame, "frame", config.FrameXY, "precession reference frame (xy, total)")
	pf.Float64Var(&angleScale, "angle-scale", config.DefaultAngleScale, "obliquity multiplier")
	pf.Float64Var(&tmin, "tmin", 0, "plot window start")
	pf.Float64Var(&tmax, "tmax", 0, "plot window end, 0 for the end of the run")
	pf.IntVar(&resJ, "res-j", 2, "resonant angle j")
	pf.IntVar(&resDJ, "res-dj", 1, "resonant angle dj")
	pf.StringVar(&theme, "theme", "minimal", "colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [root]",
		Short: "analyse a run and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().BoolVar(&plotPanels, "plot", false, "draw the panels in the terminal")
	analyzeCmd.Flags().StringVar(&svgFile, "svg", "", "write the panels as SVG")
	analyzeCmd.Flags().StringVar(&jsonFile, "json", "", "write the result as JSON")
	analyzeCmd.Flags().StringVar(&csvFile, "csv", "", "write the sampled series as CSV")
	analyzeCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write prometheus textfile metrics")
	analyzeCmd.Flags().BoolVar(&save, "save", false, "archive the run under --data")

	viewCmd := &cobra.Command{
		Use:   "view [root]",
		Short: "interactive panel viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  viewRun,
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [root]",
		Short: "dominant frequencies of the spin and orientation series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  spectrumRun,
	}
	spectrumCmd.Flags().BoolVar(&showPower, "plot", false, "plot the precession angle power spectrum")

	phaseCmd := &cobra.Command{
		Use:   "phase [root]",
		Short: "conjugate angle against cos J",
		Args:  cobra.MaximumNArgs(1),
		RunE:  phaseRun,
	}
	phaseCmd.Flags().BoolVar(&section, "section", false, "keep only periapsis passages of the resolved orbit")

	comCmd := &cobra.Command{
		Use:   "com [root]",
		Short: "elements of the resolved body and centre barycentre relative to a point mass",
		Args:  cobra.MaximumNArgs(1),
		RunE:  comRun,
	}
	comCmd.Flags().IntVar(&target, "target", 1, "point mass index")
	comCmd.Flags().IntVar(&rows, "rows", 10, "number of rows to print")

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list configuration presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			systems := config.ListSystems()
			if len(args) == 1 {
				systems = args
			}
			for _, s := range systems {
				presets := config.ListPresets(s)
				if len(presets) == 0 {
					fmt.Printf("no presets for system: %s\n", s)
					continue
				}
				fmt.Printf("presets for %s:\n", s)
				for _, p := range presets {
					fmt.Printf("  %s/%s\n", s, p)
				}
			}
			return nil
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list archived runs",
		RunE:  listRuns,
	}

	rootCmd.AddCommand(analyzeCmd, viewCmd, spectrumCmd, phaseCmd, comCmd, presetsCmd, runsCmd)
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves defaults, then the preset, then the config file, then
// any flag given on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		system, name, _ := strings.Cut(preset, "/")
		p := config.GetPreset(system, name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		cfg = p
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("bodies") {
		cfg.NumBodies = numBodies
	}
	if flags.Changed("max-points") {
		cfg.MaxPoints = maxPoints
	}
	if flags.Changed("grav-const") {
		cfg.GravConst = gravConst
	}
	if flags.Changed("resolved-mass") {
		cfg.ResolvedMass = resMass
	}
	if flags.Changed("track-axes") {
		cfg.TrackAxes = trackAxes
	}
	if flags.Changed("frame") {
		cfg.PrecessionFrame = precFrame
	}
	if flags.Changed("angle-scale") {
		cfg.AngleScale = angleScale
	}
	if flags.Changed("tmin") {
		cfg.Plot.TMin = tmin
	}
	if flags.Changed("tmax") {
		cfg.Plot.TMax = tmax
	}
	if flags.Changed("res-j") {
		cfg.Plot.ResJ = resJ
	}
	if flags.Changed("res-dj") {
		cfg.Plot.ResDJ = resDJ
	}
	if flags.Changed("theme") {
		cfg.Plot.Theme = theme
	}
	return cfg, cfg.Validate()
}

func fileRoot(cfg *config.Config, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.FileRoot == "" {
		return "", fmt.Errorf("no file root: pass one or set file_root in the config")
	}
	return cfg.FileRoot, nil
}

func pipelineOptions(cfg *config.Config, obs dynamo.Observer, log *slog.Logger) pipeline.Options {
	return pipeline.Options{
		MaxPoints:       cfg.MaxPoints,
		GravConst:       cfg.GravConst,
		ResolvedMass:    cfg.ResolvedMass,
		AngleScale:      cfg.AngleScale,
		PrecessionFrame: cfg.PrecessionFrame,
		TrackAxes:       cfg.TrackAxes,
		Observer:        obs,
		Logger:          log,
	}
}

func panelOptions(cfg *config.Config) viz.PanelOptions {
	o := viz.DefaultPanelOptions()
	o.TMin, o.TMax = cfg.Plot.TMin, cfg.Plot.TMax
	o.ResJ, o.ResDJ = cfg.Plot.ResJ, cfg.Plot.ResDJ
	o.MedianBox = cfg.Spectral.MedianBox
	return o
}

func renderOptions(cfg *config.Config) viz.RenderOptions {
	o := viz.DefaultRenderOptions()
	o.Width, o.Height = cfg.Plot.Width, cfg.Plot.Height
	if len(cfg.Plot.Palette) > 0 {
		o.Palette = cfg.Plot.Palette
	}
	o.Theme = viz.GetTheme(cfg.Plot.Theme)
	return o
}
