// Package renderer drives the integrator over every pixel of the image.
package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/kdtree"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ProgressFunc is called after every column of the image has finished
type ProgressFunc func(column, columns int)

// Renderer renders a scene column by column on a pool of workers
type Renderer struct {
	scene    *scene.Scene
	progress ProgressFunc
	logger   log.Logger
}

// NewRenderer creates a renderer for sc
func NewRenderer(sc *scene.Scene) *Renderer {
	return &Renderer{
		scene:  sc,
		logger: log.New("renderer"),
	}
}

// SetProgress installs a callback invoked after each completed column
func (r *Renderer) SetProgress(fn ProgressFunc) {
	r.progress = fn
}

// Render produces the radiance picture for the scene.
//
// Columns are processed in order; within a column every row is an
// independent task and the column is joined before the next one starts.
func (r *Renderer) Render() (*Picture, RenderStats, error) {
	sc := r.scene
	cfg := sc.Config
	if err := cfg.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}
	camera, err := scene.NewCamera(sc.Camera)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid camera: %w", err)
	}

	start := time.Now()
	sc.Flatten()

	width, height := sc.Camera.Width, sc.Camera.Height
	stats := RenderStats{
		Scene:           sc.Name,
		Width:           width,
		Height:          height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		TotalSamples:    width * height * cfg.SamplesPerPixel,
		Objects:         len(sc.Objects()),
		Lamps:           len(sc.Lamps()),
		TreeEnabled:     cfg.KDTree,
	}
	r.logger.Infof("rendering %q at %dx%d, %d spp, %d objects, %d lamps",
		sc.Name, width, height, cfg.SamplesPerPixel, stats.Objects, stats.Lamps)
	if stats.Lamps == 0 {
		r.logger.Warningf("scene %q has no lamps, the image will be black", sc.Name)
	}

	var tree *kdtree.Tree
	if cfg.KDTree {
		buildStart := time.Now()
		tree = kdtree.Build(sc.Objects(), cfg.TreeOptions())
		stats.BuildTime = time.Since(buildStart)
		stats.Tree = tree.Stats()
		r.logger.Infof("k-d tree: %d nodes, %d leaves, depth %d, %.2f objects/leaf, built in %s",
			stats.Tree.Nodes, stats.Tree.Leaves, stats.Tree.MaxDepth, stats.Tree.AvgLeafSize, stats.BuildTime)
	}

	picture := NewPicture(width, height)
	pool := NewWorkerPool(integrator.NewPathTracer(sc, tree), camera, picture, cfg, cfg.Threads, height)
	stats.Threads = pool.NumWorkers()
	r.logger.Infof("starting %d workers", stats.Threads)
	pool.Start()
	defer pool.Stop()

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			pool.SubmitTask(PixelTask{X: x, Y: y, TaskID: y})
		}
		for y := 0; y < height; y++ {
			if _, ok := pool.GetResult(); !ok {
				return nil, stats, fmt.Errorf("worker pool closed during column %d", x)
			}
		}

		r.logger.Debugf("column %d/%d done", x+1, width)
		if r.progress != nil {
			r.progress(x+1, width)
		}
	}

	stats.Duration = time.Since(start)
	stats.MeanLuminance = picture.MeanLuminance()
	stats.MaxLuminance = picture.MaxLuminance()
	r.logger.Noticef("rendered %q in %s", sc.Name, stats.Duration)

	return picture, stats, nil
}
