package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/paperplane/internal/anim"
	"github.com/san-kum/paperplane/internal/config"
	"github.com/san-kum/paperplane/internal/experiment"
	"github.com/san-kum/paperplane/internal/flight"
	"github.com/san-kum/paperplane/internal/render"
	"github.com/san-kum/paperplane/internal/storage"
	"github.com/san-kum/paperplane/internal/tui"
	"github.com/san-kum/paperplane/internal/web"
)

var (
	configFile string
	dataDir    string
	seed       int64
	// plane selection
	wing     string
	body     string
	shape    string
	material string
	humidity string
	preset   string
	// output
	gifOut   string
	svgOut   string
	save     bool
	fps      int
	trail    bool
	addr     string
	runs     int
	svgWidth int
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	readoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// main registers the paperplane commands and runs the terminal UI when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "paperplane",
		Short:        "paper airplane flight simulator",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pick a plane and launch it in the terminal",
		RunE:  runTUI,
	}
	addPlaneFlags(tuiCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the browser simulator",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "gif frame rate")
	serveCmd.Flags().BoolVar(&trail, "trail", false, "draw the path behind the marker")

	flyCmd := &cobra.Command{
		Use:   "fly",
		Short: "launch one plane and print the distance",
		RunE:  runFly,
	}
	addPlaneFlags(flyCmd)
	flyCmd.Flags().StringVar(&gifOut, "gif", "", "write the animation to this gif file")
	flyCmd.Flags().StringVar(&svgOut, "svg", "", "write the path to this svg file")
	flyCmd.Flags().BoolVar(&save, "save", false, "record the flight in the data directory")
	flyCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "gif frame rate")
	flyCmd.Flags().BoolVar(&trail, "trail", false, "draw the path behind the marker")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "launch one plane many times and summarise the distances",
		RunE:  runStats,
	}
	addPlaneFlags(statsCmd)
	statsCmd.Flags().IntVar(&runs, "runs", 10000, "number of launches")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset planes",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded flights",
		RunE:  listFlights,
	}

	showCmd := &cobra.Command{
		Use:   "show [flight_id]",
		Short: "show a recorded flight",
		Args:  cobra.ExactArgs(1),
		RunE:  showFlight,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [flight_id]",
		Short: "export a recorded flight path to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "svg width")

	rootCmd.AddCommand(tuiCmd, serveCmd, flyCmd, statsCmd, presetsCmd, listCmd, showCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPlaneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&wing, "wing", "", "wing length (Short, Medium, Long)")
	cmd.Flags().StringVar(&body, "body", "", "body length (Short, Medium, Long)")
	cmd.Flags().StringVar(&shape, "shape", "", "shape (Delta, Standard, Arrow)")
	cmd.Flags().StringVar(&material, "material", "", "material (Recycled, Regular, Glossy)")
	cmd.Flags().StringVar(&humidity, "humidity", "", "humidity (Dry, Normal, Humid)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a preset plane")
}

// loadConfig reads the config file if given, then applies the flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = fps
	}
	if flags.Changed("trail") {
		cfg.Animation.Trail = trail
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Plane = p
	}
	for _, a := range flight.Attributes {
		if v := planeFlag(a); v != "" {
			cfg.Plane.Set(a, v)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func planeFlag(a flight.Attribute) string {
	switch a {
	case flight.WingLength:
		return wing
	case flight.BodyLength:
		return body
	case flight.Shape:
		return shape
	case flight.Material:
		return material
	case flight.Humidity:
		return humidity
	}
	return ""
}

func effectiveSeed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg, flight.NewRand(effectiveSeed(cfg)))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "paperplane ", log.LstdFlags)
	srv := web.New(cfg, flight.NewRand(effectiveSeed(cfg)), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx)
}

func runFly(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s := effectiveSeed(cfg)
	res := flight.Simulate(cfg.Plane, flight.NewRand(s))
	path := anim.Path(res.Distance)
	style := render.StyleFor(res.Plane)

	fmt.Println(successStyle.Render("take-off!"))
	fmt.Println(mutedStyle.Render(res.Plane.String()))
	fmt.Printf("base %.0f  wind %+.2f  noise %+.2f\n\n", res.Base, res.Wind, res.Noise)

	ys := make([]float64, len(path))
	for i, f := range path {
		ys[i] = f.Y
	}
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(8),
		asciigraph.Width(anim.FrameCount),
		asciigraph.Caption(fmt.Sprintf("height over %d frames", anim.FrameCount)),
	))
	fmt.Println()
	fmt.Println(readoutStyle.Render("✈ final flight distance: " + flight.Readout(res.Distance)))

	if gifOut != "" {
		f, err := os.Create(gifOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := cfg.Renderer().GIF(f, path, style, cfg.Animation.FPS); err != nil {
			return fmt.Errorf("write gif: %w", err)
		}
		fmt.Printf("gif: %s\n", gifOut)
	}

	if svgOut != "" {
		svg := render.PathSVG(anim.Points(path), cfg.Animation.Width, cfg.Animation.Height/2, style)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", svgOut)
	}

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(s, res, path)
		if err != nil {
			return err
		}
		fmt.Printf("flight id: %s\n", id)
	}

	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	exp := experiment.New(experiment.Config{
		Plane: cfg.Plane,
		Runs:  runs,
		Seed:  effectiveSeed(cfg),
	})

	fmt.Printf("launching %s %d times...\n", cfg.Plane, runs)
	start := time.Now()
	res, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "base\t%.2f\n", res.Base)
	for _, name := range []string{"mean", "stddev", "min", "max", "wind_span"} {
		fmt.Fprintf(w, "%s\t%.4f\n", name, res.Metrics[name])
	}
	fmt.Fprintf(w, "mean - base\t%+.4f\n", res.Metrics["mean"]-res.Base)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	counts, lo, width := experiment.Histogram(res.Distances, 40)
	fmt.Println(asciigraph.Plot(counts,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("distance histogram %.1f m .. %.1f m", lo, lo+width*float64(len(counts)))),
	))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWING\tBODY\tSHAPE\tMATERIAL\tHUMIDITY\tBASE")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.0f m\n",
			name, p.Wing, p.Body, p.Shape, p.Material, p.Humidity, flight.Base(p))
	}
	return w.Flush()
}

func listFlights(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	flights, err := st.List()
	if err != nil {
		return err
	}
	if len(flights) == 0 {
		fmt.Println("no flights found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tWING\tBODY\tSHAPE\tMATERIAL\tHUMIDITY\tDISTANCE")
	for _, f := range flights {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID,
			f.Timestamp.Format("2006-01-02 15:04:05"),
			f.Plane.Wing, f.Plane.Body, f.Plane.Shape, f.Plane.Material, f.Plane.Humidity,
			flight.Readout(f.Distance),
		)
	}
	return w.Flush()
}

func showFlight(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	path, err := st.LoadPath(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("no path recorded")
	}

	xs := make([]float64, len(path))
	for i, f := range path {
		xs[i] = f.X
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(8),
		asciigraph.Width(len(xs)),
		asciigraph.Caption("horizontal position per frame (m)"),
	))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	path, err := st.LoadPath(args[0])
	if err != nil {
		return err
	}

	svg := render.PathSVG(anim.Points(path), svgWidth, svgWidth/2, render.StyleFor(meta.Plane))
	if svg == "" {
		return fmt.Errorf("flight %s has too few frames to export", meta.ID)
	}
	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}
