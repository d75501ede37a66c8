package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/spf13/cobra"

	"github.com/san-kum/mandelview/internal/config"
	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/tui"
	"github.com/san-kum/mandelview/internal/viewport"
)

var (
	centerRe    float64
	centerIm    float64
	scale       float64
	iterations  int
	paletteName string
	sampling    string
	coloring    string
	presetName  string
	configFile  string
	// render command viewport
	width  int
	height int
	// trace command budget
	traceIter int
)

// main registers the commands and launches the interactive viewer when no
// subcommand is given. It exits with status 1 if command execution fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelview",
		Short: "interactive terminal Mandelbrot explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := viewConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addViewFlags(rootCmd)

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "open the interactive viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := viewConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addViewFlags(viewCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a single frame to stdout",
		RunE:  renderFrame,
	}
	addViewFlags(renderCmd)
	renderCmd.Flags().IntVar(&width, "width", 80, "frame width in columns")
	renderCmd.Flags().IntVar(&height, "height", 24, "frame height in rows")

	traceCmd := &cobra.Command{
		Use:   "trace [real] [imag]",
		Short: "plot the orbit of a single point",
		Args:  cobra.ExactArgs(2),
		RunE:  tracePoint,
	}
	traceCmd.Flags().IntVar(&traceIter, "iter", 100, "iteration budget")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame rendering",
		RunE:  benchRender,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCENTER\tSCALE\tITER")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.5f%+.5fi\t%.3e\t%d\n",
					name, p.Center.Real, p.Center.Imag, p.Scale, p.MaxIter)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(viewCmd, renderCmd, traceCmd, benchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&centerRe, "real", viewport.DefaultCenterRe, "center real part")
	cmd.Flags().Float64Var(&centerIm, "imag", viewport.DefaultCenterIm, "center imaginary part")
	cmd.Flags().Float64Var(&scale, "scale", viewport.DefaultScale, "plane units per column")
	cmd.Flags().IntVar(&iterations, "iter", viewport.DefaultMaxIter, "iteration budget")
	cmd.Flags().StringVar(&paletteName, "palette", config.DefaultPalette,
		"color palette ("+strings.Join(palette.Names(), ", ")+")")
	cmd.Flags().StringVar(&sampling, "sampling", config.DefaultSampling, "halfblock or ascii")
	cmd.Flags().StringVar(&coloring, "coloring", config.DefaultColoring, "ramp or histogram")
	cmd.Flags().StringVar(&presetName, "preset", "", "start at a named region")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

// viewConfig resolves the startup view: preset, then config file, then
// explicit flags, each layer overriding the previous one.
func viewConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("real") {
		cfg.Center.Real = centerRe
	}
	if cmd.Flags().Changed("imag") {
		cfg.Center.Imag = centerIm
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("iter") {
		cfg.MaxIter = iterations
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = paletteName
	}
	if cmd.Flags().Changed("sampling") {
		cfg.Sampling = sampling
	}
	if cmd.Flags().Changed("coloring") {
		cfg.Coloring = coloring
	}
	return cfg, nil
}

func newRenderer(cfg *config.Config) *fractal.Renderer {
	r := fractal.New()
	r.Palette = palette.Get(cfg.Palette)
	if cfg.Sampling == "ascii" {
		r.Sampling = fractal.ASCII
	}
	if cfg.Coloring == "histogram" {
		r.Coloring = fractal.Histogram
	}
	return r
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := viewConfig(cmd)
	if err != nil {
		return err
	}

	r := newRenderer(cfg)
	frame := r.Render(cfg.Camera(), viewport.Dims{Rows: height, Cols: width})
	fmt.Println(tui.FrameString(frame))
	return nil
}

func tracePoint(cmd *cobra.Command, args []string) error {
	re, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid real part: %w", err)
	}
	im, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid imaginary part: %w", err)
	}

	c := complex(re, im)
	n := fractal.Escape(c, traceIter)
	mags := fractal.Orbit(c, traceIter)

	fmt.Printf("point: %.6f%+.6fi\n", re, im)
	if n == traceIter {
		fmt.Printf("did not escape within %d iterations (interior)\n\n", traceIter)
	} else {
		fmt.Printf("escaped after %d iterations\n\n", n)
	}

	if len(mags) > 1 {
		graph := asciigraph.Plot(mags,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("|z| per iteration"),
		)
		fmt.Println(graph)
	}
	return nil
}

func benchRender(cmd *cobra.Command, args []string) error {
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cores, _ := cpu.Counts(true)
		fmt.Printf("cpu: %s (%d threads)\n\n", infos[0].ModelName, cores)
	}

	sizes := []viewport.Dims{
		{Rows: 24, Cols: 80},
		{Rows: 48, Cols: 160},
		{Rows: 96, Cols: 320},
	}
	budgets := []int{100, 500, 2000}

	r := fractal.New()
	cam := viewport.New()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tITER\tTIME\tCELLS/SEC")

	for _, dims := range sizes {
		for _, iter := range budgets {
			cam.MaxIter = iter

			start := time.Now()
			frame := r.Render(cam, dims)
			elapsed := time.Since(start)

			cells := len(frame.Cells)
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n",
				dims.Cols, dims.Rows, iter, elapsed,
				float64(cells)/elapsed.Seconds())
		}
	}
	return w.Flush()
}
