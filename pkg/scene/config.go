package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/kdtree"
)

var (
	ErrInvalidSamples     = errors.New("scene: samples per pixel must be positive")
	ErrInvalidBounces     = errors.New("scene: invalid bounce limits")
	ErrInvalidProbability = errors.New("scene: stop probability must be in [0, 1)")
	ErrInvalidThreads     = errors.New("scene: thread count must not be negative")
	ErrInvalidTreeLimits  = errors.New("scene: invalid k-d tree limits")
)

// RenderConfig contains the numeric parameters of a render
type RenderConfig struct {
	SamplesPerPixel     int     // Camera rays per pixel
	MinBounces          int     // Bounces before Russian roulette is considered
	MaxDepth            int     // Hard cap on path length
	Threads             int     // Worker count, 0 selects the number of logical CPUs
	RussianRoulette     bool    // Terminate paths stochastically after MinBounces
	StopProbability     float64 // Russian roulette termination probability
	NextEventEstimation bool    // Sample lamps directly at diffuse hits
	KDTree              bool    // Use the k-d tree instead of a linear scan
	KDTreeMaxDepth      int     // Depth at which tree nodes become leaves
	KDTreeMaxObjects    int     // Object count at or below which tree nodes become leaves
	Seed                int64   // Base seed for per-pixel generators
}

// DefaultRenderConfig returns the settings used when nothing is overridden
func DefaultRenderConfig() RenderConfig {
	opts := kdtree.DefaultOptions()
	return RenderConfig{
		SamplesPerPixel:     16,
		MinBounces:          3,
		MaxDepth:            64,
		Threads:             0,
		RussianRoulette:     true,
		StopProbability:     0.2,
		NextEventEstimation: true,
		KDTree:              true,
		KDTreeMaxDepth:      opts.MaxDepth,
		KDTreeMaxObjects:    opts.MaxObjects,
		Seed:                1,
	}
}

// TreeOptions returns the k-d tree construction limits
func (c RenderConfig) TreeOptions() kdtree.Options {
	return kdtree.Options{MaxDepth: c.KDTreeMaxDepth, MaxObjects: c.KDTreeMaxObjects}
}

// Validate checks the configuration for values the renderer cannot honor
func (c RenderConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MinBounces < 0 || c.MaxDepth <= 0 || c.MaxDepth < c.MinBounces {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidBounces, c.MinBounces, c.MaxDepth)
	}
	if c.StopProbability < 0 || c.StopProbability >= 1 {
		return fmt.Errorf("%w: got %f", ErrInvalidProbability, c.StopProbability)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreads, c.Threads)
	}
	if c.KDTreeMaxDepth < 0 || c.KDTreeMaxObjects < 1 {
		return fmt.Errorf("%w: depth %d, objects %d", ErrInvalidTreeLimits, c.KDTreeMaxDepth, c.KDTreeMaxObjects)
	}
	return nil
}
