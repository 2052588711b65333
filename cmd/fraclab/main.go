package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fraclab/internal/analysis"
	"github.com/san-kum/fraclab/internal/config"
	"github.com/san-kum/fraclab/internal/field"
	"github.com/san-kum/fraclab/internal/fractal"
	"github.com/san-kum/fraclab/internal/render"
	"github.com/san-kum/fraclab/internal/storage"
	"github.com/san-kum/fraclab/internal/viz"
)

var (
	dataDir    string
	size       int32
	iterations int32
	regionName string
	workers    int
	configFile string
	preset     string
	outFile    string
	// preview width for show
	previewWidth int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fraclab",
		Short: "escape-time fractal field laboratory",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fraclab", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render [kernel]",
		Short: "generate a field and store the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderField,
	}
	renderCmd.Flags().Int32Var(&size, "size", config.DefaultSize, "grid edge length")
	renderCmd.Flags().Int32Var(&iterations, "iterations", config.DefaultIterations, "iteration budget per cell")
	renderCmd.Flags().StringVar(&regionName, "region", config.DefaultRegion, "named region")
	renderCmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = all CPUs)")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "preview a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&previewWidth, "width", 100, "preview width in characters")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot count histogram and mid-row profile",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run counts to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "render run to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVar(&outFile, "out", "", "output path (default <run_id>.png)")

	benchCmd := &cobra.Command{
		Use:   "bench [kernel]",
		Short: "benchmark a kernel over a size/iteration grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchKernel,
	}
	benchCmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = all CPUs)")

	compareCmd := &cobra.Command{
		Use:   "compare [kernel]",
		Short: "compare worker counts on the same render",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareWorkers,
	}
	compareCmd.Flags().Int32Var(&size, "size", config.DefaultSize, "grid edge length")
	compareCmd.Flags().Int32Var(&iterations, "iterations", config.DefaultIterations, "iteration budget per cell")

	presetsCmd := &cobra.Command{
		Use:   "presets [kernel]",
		Short: "list available presets for a kernel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for kernel: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "list catalogue regions",
		RunE:  listRegions,
	}

	liveCmd := &cobra.Command{
		Use:   "live [kernel]",
		Short: "interactive explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Int32Var(&size, "size", 256, "grid edge length")
	liveCmd.Flags().Int32Var(&iterations, "iterations", 128, "iteration budget per cell")
	liveCmd.Flags().StringVar(&regionName, "region", config.DefaultRegion, "named region")
	liveCmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = all CPUs)")

	rootCmd.AddCommand(renderCmd, listCmd, showCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportPNGCmd, benchCmd, compareCmd, presetsCmd, regionsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags: preset values
// load first, the config file overrides the preset, and explicitly set
// flags override both.
func resolveConfig(cmd *cobra.Command, kernelName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Kernel = kernelName

	if preset != "" {
		p := config.GetPreset(kernelName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(kernelName))
		}
		// copy so flag overrides below never mutate the catalogue
		cp := *p
		cfg = &cp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if cfg.Kernel == "" {
			cfg.Kernel = kernelName
		}
	}

	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}
	if cmd.Flags().Changed("region") {
		cfg.Region = regionName
		cfg.Viewport = nil
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}

	return cfg, nil
}

func renderField(cmd *cobra.Command, args []string) error {
	kernelName := config.DefaultKernel
	if len(args) > 0 {
		kernelName = args[0]
	}

	cfg, err := resolveConfig(cmd, kernelName)
	if err != nil {
		return err
	}

	kernel, err := fractal.NewKernel(cfg.Kernel)
	if err != nil {
		return err
	}
	region, err := cfg.GetRegion()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	gen := field.NewGenerator()
	gen.Kernel = kernel
	gen.Region = region
	if cfg.Workers > 0 {
		gen.Workers = cfg.Workers
	}

	fmt.Printf("rendering %s (%dx%d, %d iterations)...\n", cfg.Kernel, cfg.Size, cfg.Size, cfg.Iterations)
	start := time.Now()

	f, err := gen.NewField(context.Background(), cfg.Size, cfg.Iterations)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	summary := analysis.Summarize(f, cfg.Iterations)

	runID, err := st.Save(cfg.Kernel, cfg.Region, cfg.Size, cfg.Iterations, gen.Workers, elapsed, summary.Metrics(), f)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("cells: %d\n", len(f.Data))
	fmt.Println("\nmetrics:")
	for name, val := range summary.Metrics() {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tKERNEL\tREGION\tSIZE\tITER\tWORKERS\tTIME\tMS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%.1f\n",
			run.ID,
			run.Kernel,
			run.Region,
			run.Size,
			run.Iterations,
			run.Workers,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.ElapsedMS,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	f, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kernel: %s  region: %s  size: %d  iterations: %d\n\n", meta.Kernel, meta.Region, meta.Size, meta.Iterations)
	fmt.Print(viz.Render(f, meta.Iterations, previewWidth))

	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	f, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("kernel: %s\n\n", meta.Kernel)

	hist := analysis.Histogram(f, meta.Iterations, 64)
	if len(hist) > 0 {
		graph := asciigraph.Plot(hist,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("count histogram"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	profile := analysis.RowProfile(f, f.Size/2)
	if len(profile) > 0 {
		graph := asciigraph.Plot(profile,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("mid-row profile"),
		)
		fmt.Println(graph)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	f, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, f)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	f, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, f)
}

func exportPNG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	f, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = filepath.Base(runID) + ".png"
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := render.WritePNG(file, f, meta.Iterations); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func benchKernel(cmd *cobra.Command, args []string) error {
	kernelName := config.DefaultKernel
	if len(args) > 0 {
		kernelName = args[0]
	}

	kernel, err := fractal.NewKernel(kernelName)
	if err != nil {
		return err
	}

	sizes := []int32{128, 256, 512}
	budgets := []int32{100, 500, 1000}

	gen := field.NewGenerator()
	gen.Kernel = kernel
	if workers > 0 {
		gen.Workers = workers
	}

	fmt.Printf("benchmarking %s (%d workers)\n\n", kernelName, gen.Workers)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tITER\tCELLS\tTIME\tCELLS/SEC")

	for _, sz := range sizes {
		for _, budget := range budgets {
			out := make([]int32, int(sz)*int(sz))

			start := time.Now()
			if err := gen.Generate(context.Background(), sz, budget, out); err != nil {
				return err
			}
			elapsed := time.Since(start)

			cells := len(out)
			cellsPerSec := float64(cells) / elapsed.Seconds()

			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n", sz, budget, cells, elapsed, cellsPerSec)
		}
	}

	return w.Flush()
}

func compareWorkers(cmd *cobra.Command, args []string) error {
	kernelName := config.DefaultKernel
	if len(args) > 0 {
		kernelName = args[0]
	}

	kernel, err := fractal.NewKernel(kernelName)
	if err != nil {
		return err
	}

	counts := []int{1, 2, 4, 8}

	fmt.Printf("comparing worker counts for %s (size=%d, iterations=%d)\n\n", kernelName, size, iterations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tTIME\tSPEEDUP\tMATCH")

	var reference []int32
	var baseline time.Duration

	for _, n := range counts {
		gen := field.NewGenerator()
		gen.Kernel = kernel
		gen.Workers = n

		out := make([]int32, int(size)*int(size))

		start := time.Now()
		if err := gen.Generate(context.Background(), size, iterations, out); err != nil {
			return err
		}
		elapsed := time.Since(start)

		match := "-"
		if reference == nil {
			reference = out
			baseline = elapsed
		} else {
			match = "yes"
			for i := range out {
				if out[i] != reference[i] {
					match = "NO"
					break
				}
			}
		}

		speedup := baseline.Seconds() / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%v\t%.2fx\t%s\n", n, elapsed, speedup, match)
	}

	return w.Flush()
}

func listRegions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX\tY\tEXTENT")

	for _, name := range fractal.RegionNames() {
		r, err := fractal.RegionByName(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t[%g, %g)\t[%g, %g)\t%g\n", name, r.XMin, r.XMax, r.YMin, r.YMax, r.Width())
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	region, err := fractal.RegionByName(regionName)
	if err != nil {
		return err
	}

	kernelName := config.DefaultKernel
	if len(args) > 0 {
		if _, err := fractal.NewKernel(args[0]); err != nil {
			return err
		}
		kernelName = args[0]
	}

	return viz.RunLive(kernelName, size, iterations, workers, region)
}
