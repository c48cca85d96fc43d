package cmd

import (
	"bytes"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// progressSteps is the number of progress messages logged per render
const progressSteps = 10

// RenderFrame renders a built-in scene to an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Builtin(ctx.String("scene"))
	if err != nil {
		return err
	}
	applyRenderFlags(ctx, sc)

	r := renderer.NewRenderer(sc)
	r.SetProgress(logProgress)

	picture, stats, err := r.Render()
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := writeImage(out, picture); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)

	displayRenderStats(stats)
	return nil
}

// applyRenderFlags overrides the scene's camera and render settings
func applyRenderFlags(ctx *cli.Context, sc *scene.Scene) {
	if width := ctx.Int("width"); width > 0 {
		sc.Camera.Width = width
	}
	if height := ctx.Int("height"); height > 0 {
		sc.Camera.Height = height
	}

	cfg := &sc.Config
	cfg.SamplesPerPixel = ctx.Int("spp")
	cfg.MinBounces = ctx.Int("min-bounces")
	cfg.MaxDepth = ctx.Int("max-depth")
	cfg.Threads = ctx.Int("threads")
	cfg.RussianRoulette = ctx.BoolT("rr")
	cfg.StopProbability = ctx.Float64("stop-probability")
	cfg.NextEventEstimation = ctx.BoolT("nee")
	cfg.KDTree = ctx.BoolT("kdtree")
	cfg.KDTreeMaxDepth = ctx.Int("kdtree-depth")
	cfg.KDTreeMaxObjects = ctx.Int("kdtree-objects")
	cfg.Seed = ctx.Int64("seed")
}

// logProgress reports every tenth of the image
func logProgress(column, columns int) {
	step := max(1, columns/progressSteps)
	if column%step == 0 || column == columns {
		logger.Infof("progress: %d%% (%d/%d columns)", column*100/columns, column, columns)
	}
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("render statistics\n%s", buf.String())
}
