package batch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/rs/zerolog"

	"spherecoord/internal/backdrop"
	"spherecoord/internal/pointlist"
	"spherecoord/internal/postprocess"
	"spherecoord/internal/raster"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Backdrop    string
	Backdrops   backdrop.Resolver
	PlotSize    int
	Supersample int
	PointRadius float64
	Workers     int
	Log         zerolog.Logger
}

// Result holds the outcome of plotting one point set.
type Result struct {
	Name    string
	Index   int
	Image   string // relative to OutputDir
	Drawn   int
	Skipped int
	Success bool
	Error   string
}

// Run plots every set using a worker pool. Sets not yet dispatched when
// ctx is cancelled are reported as failed with the context error. A set
// whose Index repeats an earlier one fails without being plotted, since
// both would write the same image.
func Run(ctx context.Context, cfg Config, sets []pointlist.PointSet) []Result {
	total := len(sets)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					cfg.Log.Info().Int64("done", p).Int("total", total).Float64("sets_per_sec", rate).Msg("progress")
				}
			}
		}
	}()

	setChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range setChan {
				results[idx] = processSet(cfg, sets[idx])
				processed.Add(1)
			}
		}()
	}

	jobs := make([]int, 0, total)
	seen := make(map[int]string, total)
	for i, set := range sets {
		if first, dup := seen[set.Index]; dup {
			results[i] = failed(set, fmt.Sprintf("duplicate set index %d (already used by %q)", set.Index, first))
			continue
		}
		seen[set.Index] = set.Name
		jobs = append(jobs, i)
	}

	sent := 0
dispatch:
	for _, i := range jobs {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case setChan <- i:
			sent++
		}
	}
	close(setChan)

	wg.Wait()
	close(done)

	for _, i := range jobs[sent:] {
		results[i] = failed(sets[i], ctx.Err().Error())
	}

	return results
}

// ImageName is the output file for a set, relative to the output directory.
func ImageName(set pointlist.PointSet) string {
	return fmt.Sprintf("%d.webp", set.Index)
}

func failed(set pointlist.PointSet, msg string) Result {
	return Result{Name: set.Name, Index: set.Index, Error: msg}
}

func processSet(cfg Config, set pointlist.PointSet) Result {
	if len(set.Points) == 0 {
		return failed(set, "No points in set")
	}

	img, stats := renderSet(cfg, set)

	name := ImageName(set)
	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return failed(set, err.Error())
	}

	f, err := os.Create(outPath)
	if err != nil {
		return failed(set, err.Error())
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return failed(set, fmt.Sprintf("WebP encode: %v", err))
	}

	cfg.Log.Debug().
		Int("index", set.Index).
		Str("name", set.Name).
		Int("drawn", stats.Drawn).
		Int("skipped", stats.Skipped).
		Float64("min_r", stats.MinR).
		Float64("max_r", stats.MaxR).
		Msg("plotted")

	return Result{
		Name:    set.Name,
		Index:   set.Index,
		Image:   name,
		Drawn:   stats.Drawn,
		Skipped: stats.Skipped,
		Success: true,
	}
}

// renderSet draws a set at the final output size.
func renderSet(cfg Config, set pointlist.PointSet) (*image.NRGBA, raster.PlotStats) {
	size := max(cfg.PlotSize, 1)
	ss := max(cfg.Supersample, 1)

	img, stats := raster.RenderPlot(set.Spherical(), set.Name, cfg.resolveBackdrop(), size, ss, cfg.PointRadius)
	if ss > 1 {
		img = postprocess.Downsample(img, 2*size, size)
	}
	return img, stats
}

func (cfg Config) resolveBackdrop() *image.NRGBA {
	if cfg.Backdrops == nil || cfg.Backdrop == "" {
		return nil
	}
	return cfg.Backdrops.Resolve(cfg.Backdrop)
}
