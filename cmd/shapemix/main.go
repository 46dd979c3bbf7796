package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/shapemix/internal/analysis"
	"github.com/san-kum/shapemix/internal/config"
	"github.com/san-kum/shapemix/internal/export"
	"github.com/san-kum/shapemix/internal/shape"
	"github.com/san-kum/shapemix/internal/sweep"
	"github.com/san-kum/shapemix/internal/tui"
	"github.com/san-kum/shapemix/internal/viz"
	"github.com/spf13/cobra"
)

var (
	// Mode parameters, one entry per mode
	symmetries []int
	periods    []int
	amplitudes []float64
	phasesDeg  []float64

	configFile string
	preset     string
	stepDeg    float64
	noCenter   bool
	sumModes   bool
	verbose    bool

	// Rendering
	width      int
	height     int
	plotWidth  int
	plotHeight int
	themeName  string
	output     string

	// Spectrum
	samples  int
	numPeaks int

	// Sweep
	mMin, mMax   int
	nMin, nMax   int
	coprimeOnly  bool
	targetBeta   float64
	paramsIn     string
	svgSize      int
	svgLineWidth float64

	logger = slog.Default()
)

const (
	defaultPlotWidth  = 80
	defaultPlotHeight = 12
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "shapemix",
		Short:        "log-radius shape profiles and their predicted exponents",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "draw the mixed shape in the terminal",
		RunE:  renderShape,
	}
	addShapeFlags(renderCmd)
	addCanvasFlags(renderCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the log-radius profile over one fundamental period",
		RunE:  plotProfile,
	}
	addShapeFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", defaultPlotWidth, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", defaultPlotHeight, "plot height")

	betaCmd := &cobra.Command{
		Use:   "beta",
		Short: "print the predicted exponent of every mode",
		RunE:  printBetas,
	}
	addShapeFlags(betaCmd)

	mixCmd := &cobra.Command{
		Use:   "mix",
		Short: "summarize the combined shape",
		RunE:  printMix,
	}
	addShapeFlags(mixCmd)

	exportCmd := &cobra.Command{
		Use:       "export [svg|json|csv|params]",
		Short:     "write the mixed shape to a file or stdout",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"svg", "json", "csv", "params"},
		RunE:      exportShape,
	}
	addShapeFlags(exportCmd)
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&svgSize, "size", 350, "svg canvas size in pixels")
	exportCmd.Flags().Float64Var(&svgLineWidth, "stroke", 5, "svg stroke width")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "frequency analysis of the log-radius profile",
		RunE:  printSpectrum,
	}
	addShapeFlags(spectrumCmd)
	spectrumCmd.Flags().IntVar(&samples, "samples", analysis.DefaultSamples, "profile samples")
	spectrumCmd.Flags().IntVar(&numPeaks, "peaks", 5, "number of peaks to show")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "tabulate predicted exponents over a grid of m and n",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&mMin, "m-min", 2, "smallest symmetry")
	sweepCmd.Flags().IntVar(&mMax, "m-max", 10, "largest symmetry")
	sweepCmd.Flags().IntVar(&nMin, "n-min", 1, "smallest period")
	sweepCmd.Flags().IntVar(&nMax, "n-max", 10, "largest period")
	sweepCmd.Flags().BoolVar(&coprimeOnly, "coprime", false, "only co-prime pairs")
	sweepCmd.Flags().Float64Var(&targetBeta, "target", 0, "report the pair whose beta is closest to this value")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %d shape(s)\n", name, len(p.Shapes))
			}
			return nil
		},
	}

	coprimeCmd := &cobra.Command{
		Use:   "coprime [a] [b]",
		Short: "report whether two integers are co-prime",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[0], err)
			}
			b, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[1], err)
			}
			fmt.Println(shape.AreCoprime(a, b))
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive shape mixer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, logger)
		},
	}
	addShapeFlags(tuiCmd)
	addCanvasFlags(tuiCmd)

	rootCmd.AddCommand(renderCmd, plotCmd, betaCmd, mixCmd, exportCmd, spectrumCmd, sweepCmd, presetsCmd, coprimeCmd, tuiCmd)
	return rootCmd
}

func addShapeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntSliceVar(&symmetries, "m", nil, "symmetry of each mode")
	f.IntSliceVar(&periods, "n", nil, "period of each mode")
	f.Float64SliceVar(&amplitudes, "eps", nil, "amplitude of each mode (default 1)")
	f.Float64SliceVar(&phasesDeg, "phase", nil, "phase offset of each mode in degrees (default 0)")
	f.StringVar(&configFile, "config", "", "mix file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset mix")
	f.StringVar(&paramsIn, "params", "", "load a shape from a json params file")
	f.Float64Var(&stepDeg, "step", config.DefaultStepDegrees, "sampling step in degrees")
	f.BoolVar(&noCenter, "no-center", false, "do not subtract the boundary centroid")
	f.BoolVar(&sumModes, "sum", false, "sum shapes instead of averaging")
}

func addCanvasFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&width, "width", config.DefaultWidth, "canvas width in cells")
	f.IntVar(&height, "height", config.DefaultHeight, "canvas height in cells")
	f.StringVar(&themeName, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
}

// loadConfig resolves preset, then config file, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	if paramsIn != "" {
		s, err := export.LoadParams(paramsIn)
		if err != nil {
			return nil, err
		}
		cfg.Shapes = []config.ShapeConfig{config.FromShape(paramsIn, s)}
	}

	if cmd.Flags().Changed("m") || cmd.Flags().Changed("n") {
		s, err := shapeFromFlags()
		if err != nil {
			return nil, err
		}
		cfg.Shapes = []config.ShapeConfig{config.FromShape("flags", s)}
	}

	f := cmd.Flags()
	if f.Changed("step") || cfg.StepDegrees == 0 {
		cfg.StepDegrees = stepDeg
	}
	if f.Changed("no-center") {
		cfg.Center = !noCenter
	}
	if f.Changed("sum") {
		cfg.Average = !sumModes
	}
	if f.Lookup("width") != nil && (f.Changed("width") || cfg.Render.Width == 0) {
		cfg.Render.Width = width
	}
	if f.Lookup("height") != nil && (f.Changed("height") || cfg.Render.Height == 0) {
		cfg.Render.Height = height
	}
	if themeName != "" {
		cfg.Render.Theme = themeName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("configuration resolved", "shapes", len(cfg.Shapes), "average", cfg.Average, "step", cfg.Step())
	return cfg, nil
}

// shapeFromFlags builds one shape from the --m/--n/--eps/--phase lists.
// Missing amplitudes default to 1 and missing phases to 0.
func shapeFromFlags() (*shape.Shape, error) {
	eps := amplitudes
	if len(eps) == 0 {
		eps = make([]float64, len(symmetries))
		for i := range eps {
			eps[i] = 1
		}
	}
	p := make([]float64, len(phasesDeg))
	for i, deg := range phasesDeg {
		p[i] = deg / 180 * math.Pi
	}
	if len(p) == 0 {
		p = make([]float64, len(symmetries))
	}
	return shape.FromArrays(symmetries, periods, eps, p)
}

func mixFromFlags(cmd *cobra.Command) (*config.Config, *shape.Shape, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	mix, err := cfg.Mix()
	if err != nil {
		return nil, nil, err
	}
	warnDegenerate(mix)
	return cfg, mix, nil
}

func warnDegenerate(s *shape.Shape) {
	modes := s.Modes()
	for _, i := range s.Degenerate() {
		logger.Warn("degenerate mode", "index", i, "mode", modes[i].String(), "error", shape.ErrDegenerateGeometry)
	}
}

func renderShape(cmd *cobra.Command, args []string) error {
	cfg, mix, err := mixFromFlags(cmd)
	if err != nil {
		return err
	}
	theme := viz.GetTheme(cfg.Render.Theme)
	styles := theme.Styles()

	canvas := viz.RenderShape(mix, cfg.Render.Width, cfg.Render.Height, cfg.Render.Fill, cfg.Step())
	fmt.Println(styles.Title.Render(mix.String()))
	fmt.Print(canvas.Colored(theme.Text))
	for i, md := range mix.Modes() {
		line := fmt.Sprintf("β=%.4f", md.PredictedExponent())
		if !shape.AreCoprime(md.Period, md.Symmetry) {
			line = styles.Warning.Render("m and n are not co-prime")
		}
		fmt.Println(styles.Label.Render(fmt.Sprintf("mode %d (%d/%d)", i, md.Symmetry, md.Period)) + " " + line)
	}
	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	cfg, mix, err := mixFromFlags(cmd)
	if err != nil {
		return err
	}
	logR := mix.LogRadius(mix.Angles(cfg.Step()))
	if len(logR) == 0 {
		return errors.New("no samples to plot")
	}

	graph := asciigraph.Plot(logR,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("log r(θ) over %.0f turns", mix.FundamentalPeriod()/(2*math.Pi))),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func printBetas(cmd *cobra.Command, args []string) error {
	_, mix, err := mixFromFlags(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tM\tN\tNU\tEPS\tPHASE\tBETA\tCOPRIME")
	for i, md := range mix.Modes() {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\t%.3f\t%.4f\t%.4f\t%v\n",
			i,
			md.Symmetry,
			md.Period,
			md.FrequencyRatio(),
			md.Amplitude,
			md.EffectivePhase(),
			md.PredictedExponent(),
			shape.AreCoprime(md.Period, md.Symmetry),
		)
	}
	return w.Flush()
}

func printMix(cmd *cobra.Command, args []string) error {
	cfg, mix, err := mixFromFlags(cmd)
	if err != nil {
		return err
	}
	op := "average"
	if !cfg.Average {
		op = "sum"
	}

	fmt.Printf("shapes: %d (%s)\n", len(cfg.Shapes), op)
	fmt.Printf("modes: %d\n", mix.Len())
	fmt.Printf("fundamental period: %.4f (%.0f×2π)\n", mix.FundamentalPeriod(), mix.FundamentalPeriod()/(2*math.Pi))
	fmt.Printf("samples at %.2f°: %d\n", cfg.Step(), len(mix.Angles(cfg.Step())))
	fmt.Println("\nmodes:")
	for _, md := range mix.Modes() {
		fmt.Printf("  %s\n", md)
	}
	return nil
}

func exportShape(cmd *cobra.Command, args []string) error {
	cfg, mix, err := mixFromFlags(cmd)
	if err != nil {
		return err
	}

	if output == "" {
		return writeExport(cmd.OutOrStdout(), args[0], cfg, mix)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := writeExport(f, args[0], cfg, mix); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	logger.Info("exported", "format", args[0], "path", output)
	return nil
}

func writeExport(w io.Writer, format string, cfg *config.Config, mix *shape.Shape) error {
	var err error
	switch format {
	case "svg":
		opts := export.DefaultSVGOptions()
		opts.Size = svgSize
		opts.StrokeWidth = svgLineWidth
		if cfg.Render.Fill > 0 {
			opts.Fill = cfg.Render.Fill
		}
		err = export.WriteSVG(w, mix, cfg.Step(), opts)
	case "json":
		err = export.WriteJSON(w, mix, cfg.Step(), cfg.Center)
	case "csv":
		err = export.WriteCSV(w, mix, cfg.Step(), cfg.Center)
	case "params":
		err = export.WriteParams(w, mix)
	default:
		return fmt.Errorf("unknown export format: %s (svg, json, csv, params)", format)
	}
	return err
}

func printSpectrum(cmd *cobra.Command, args []string) error {
	_, mix, err := mixFromFlags(cmd)
	if err != nil {
		return err
	}

	peaks := analysis.Peaks(mix, samples, numPeaks)
	fmt.Printf("fundamental period: %.0f×2π, %d samples\n\n", mix.FundamentalPeriod()/(2*math.Pi), samples)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BIN\tRATIO\tAMPLITUDE")
	for _, p := range peaks {
		fmt.Fprintf(w, "%d\t%.4f\t%.4f\n", p.Bin, p.Ratio, p.Amplitude)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	rows, err := sweep.Grid(sweep.Range{Min: mMin, Max: mMax}, sweep.Range{Min: nMin, Max: nMax})
	if err != nil {
		return err
	}
	if coprimeOnly {
		rows = sweep.Coprime(rows)
	}
	logger.Debug("sweep", "rows", len(rows))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "M\tN\tNU\tBETA\tCOPRIME\tTURNS")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\t%v\t%d\n", r.Symmetry, r.Period, r.Ratio, r.Beta, r.Coprime, r.Turns)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cmd.Flags().Changed("target") {
		if r, ok := sweep.Closest(rows, targetBeta); ok {
			fmt.Printf("\nclosest to β=%.4f: m=%d n=%d (β=%.4f)\n", targetBeta, r.Symmetry, r.Period, r.Beta)
		}
	}
	return nil
}
