package cmd

import (
	"errors"
	"image/color"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestVec3ToColor(t *testing.T) {
	tests := []struct {
		name     string
		radiance core.Vec3
		expected color.RGBA
	}{
		{"Black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"White", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"Overexposed clamps", core.NewVec3(9, 4, 2), color.RGBA{255, 255, 255, 255}},
		{"Gamma two", core.NewVec3(0.25, 0.0625, 1), color.RGBA{127, 63, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vec3ToColor(tt.radiance); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestToImage(t *testing.T) {
	picture := renderer.NewPicture(3, 2)
	picture.Set(2, 1, core.NewVec3(1, 0, 0))

	img := toImage(picture)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red pixel at (2,1), got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black pixel at (0,0), got %v", got)
	}
}

func TestEncoderFor(t *testing.T) {
	for _, name := range []string{"a.png", "b.BMP", "c.tif", "d.tiff"} {
		if _, err := encoderFor(name); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
	for _, name := range []string{"a.jpg", "noext"} {
		if _, err := encoderFor(name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}
