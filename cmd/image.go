package cmd

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// displayGamma is the gamma applied when converting radiance to 8-bit color
const displayGamma = 2.0

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(displayGamma)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// toImage tone maps a radiance picture into an 8-bit image
func toImage(picture *renderer.Picture) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, picture.Width, picture.Height))
	for y := 0; y < picture.Height; y++ {
		for x := 0; x < picture.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(picture.Radiance(x, y)))
		}
	}
	return img
}

// encoderFor picks an image encoder from the file extension
func encoderFor(filename string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// writeImage saves the picture to filename in the format implied by its extension
func writeImage(filename string, picture *renderer.Picture) error {
	encode, err := encoderFor(filename)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := encode(file, toImage(picture)); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return nil
}
