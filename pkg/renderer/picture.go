package renderer

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Picture is a width×height buffer of accumulated radiance
type Picture struct {
	Width  int
	Height int
	pixels []core.Vec3 // Row-major
}

// NewPicture allocates a black picture
func NewPicture(width, height int) *Picture {
	return &Picture{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Radiance returns the value of pixel (x, y)
func (p *Picture) Radiance(x, y int) core.Vec3 {
	return p.pixels[y*p.Width+x]
}

// Set overwrites pixel (x, y)
func (p *Picture) Set(x, y int, radiance core.Vec3) {
	p.pixels[y*p.Width+x] = radiance
}

// Add accumulates radiance into pixel (x, y)
func (p *Picture) Add(x, y int, radiance core.Vec3) {
	p.pixels[y*p.Width+x].AddAssign(radiance)
}

// Pixels returns the row-major pixel buffer
func (p *Picture) Pixels() []core.Vec3 {
	return p.pixels
}

// luminances returns the per-pixel luminance
func (p *Picture) luminances() []float64 {
	values := make([]float64, len(p.pixels))
	for i, pixel := range p.pixels {
		values[i] = pixel.Luminance()
	}
	return values
}

// MeanLuminance returns the average pixel luminance
func (p *Picture) MeanLuminance() float64 {
	if len(p.pixels) == 0 {
		return 0
	}
	return stat.Mean(p.luminances(), nil)
}

// MaxLuminance returns the brightest pixel luminance
func (p *Picture) MaxLuminance() float64 {
	if len(p.pixels) == 0 {
		return 0
	}
	return floats.Max(p.luminances())
}
