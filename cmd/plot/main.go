package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"spherecoord/internal/backdrop"
	"spherecoord/internal/batch"
	"spherecoord/internal/config"
	"spherecoord/internal/logging"
	"spherecoord/internal/pointlist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run plots a point list. Exit codes: 0 ok, 1 load or plot failure, 2 usage error.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to config file (.json, .yaml, .yml)")
	points := fs.String("points", "", "Point list XML (default: points.xml)")
	set := fs.Int("set", -1, "Plot only the set with this index")
	workers := fs.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := fs.String("output", "", "Output directory (default: plots)")
	bgPath := fs.String("backdrop", "", "Equirectangular backdrop image (PNG, JPEG, TGA)")
	logLevel := fs.String("log", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	cfg.Resolve(config.Flags{
		PointList: *points,
		OutputDir: *outputDir,
		Backdrop:  *bgPath,
		Workers:   *workers,
		LogLevel:  *logLevel,
	})

	log := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)

	sets, err := pointlist.Parse(cfg.PointListXML)
	if err != nil {
		log.Error().Err(err).Msg("loading point list")
		return 1
	}

	if *set >= 0 {
		var filtered []pointlist.PointSet
		for _, s := range sets {
			if s.Index == *set {
				filtered = append(filtered, s)
			}
		}
		sets = filtered
	}

	if len(sets) == 0 {
		fmt.Fprintln(stdout, "No point sets to plot.")
		return 0
	}

	runID := batch.NewRunID()
	log.Info().
		Str("run_id", runID).
		Int("sets", len(sets)).
		Int("workers", cfg.Workers).
		Str("output", cfg.OutputDir).
		Str("backdrop", cfg.Backdrop).
		Msg("plotting")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Backdrop:  cfg.Backdrop,
		Backdrops: backdrop.NewCache(func(path string, err error) {
			log.Warn().Err(err).Str("path", path).Msg("backdrop unavailable, using plain background")
		}),
		PlotSize:    cfg.PlotSize,
		Supersample: cfg.Supersample,
		PointRadius: cfg.PointRadius,
		Workers:     cfg.Workers,
		Log:         log,
	}

	results := batch.Run(ctx, batchCfg, sets)

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
			continue
		}
		failed++
		if failed <= 20 {
			log.Error().Int("index", r.Index).Str("name", r.Name).Msg(r.Error)
		}
	}

	log.Info().
		Int("plotted", success).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Error().Err(err).Msg("creating output directory")
		return 1
	}
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batch.BuildManifest(runID, sets, results)); err != nil {
		log.Warn().Err(err).Msg("manifest write failed")
	} else {
		fmt.Fprintf(stdout, "Manifest: %s\n", manifestPath)
	}

	fmt.Fprintf(stdout, "Plotted: %d/%d\n", success, len(sets))
	if failed > 0 {
		return 1
	}
	return 0
}
