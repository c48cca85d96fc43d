package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/kdtree"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	defaults := scene.DefaultRenderConfig()
	tree := kdtree.DefaultOptions()

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image",
			Description: `
Render one of the built-in scenes with recursive path tracing and write the
result as a gamma corrected image. The output format follows the file
extension (.png, .bmp, .tif or .tiff).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "built-in scene name (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: defaults.SamplesPerPixel,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "min-bounces",
					Value: defaults.MinBounces,
					Usage: "bounces before russian roulette is considered",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: defaults.MaxDepth,
					Usage: "hard limit on path length",
				},
				cli.IntFlag{
					Name:  "threads, t",
					Value: defaults.Threads,
					Usage: "worker count, 0 uses every logical cpu",
				},
				cli.BoolTFlag{
					Name:  "rr",
					Usage: "enable russian roulette path termination",
				},
				cli.Float64Flag{
					Name:  "stop-probability",
					Value: defaults.StopProbability,
					Usage: "russian roulette termination probability",
				},
				cli.BoolTFlag{
					Name:  "nee",
					Usage: "enable next event estimation",
				},
				cli.BoolTFlag{
					Name:  "kdtree",
					Usage: "accelerate intersections with a k-d tree",
				},
				cli.IntFlag{
					Name:  "kdtree-depth",
					Value: tree.MaxDepth,
					Usage: "maximum k-d tree depth",
				},
				cli.IntFlag{
					Name:  "kdtree-objects",
					Value: tree.MaxObjects,
					Usage: "maximum objects per k-d tree leaf",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "base random seed",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}
