package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		args        []string
		out         string
		expectError bool
	}{
		{"cornell png", []string{"--scene", "cornell"}, "cornell.png", false},
		{"spheres bmp without tree", []string{"--scene", "spheres", "--kdtree=false"}, "spheres.bmp", false},
		{"random tiff without nee", []string{"--scene", "random", "--nee=false", "--rr=false"}, "nested/random.tiff", false},
		{"unknown scene", []string{"--scene", "nonexistent"}, "missing.png", true},
		{"unsupported format", []string{"--scene", "cornell"}, "frame.gif", true},
		{"invalid samples", []string{"--scene", "cornell", "--spp", "0"}, "invalid.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.out)
			args := append([]string{"go-pathtracer", "render", "--width", "8", "--height", "6", "--spp", "1", "--threads", "2", "--out", out}, tt.args...)

			err := newApp().Run(args)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %v, got none", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("Expected output file %s: %v", out, err)
			}
			if info.Size() == 0 {
				t.Errorf("Output file %s is empty", out)
			}
		})
	}
}

func TestRenderCommand_PNGDimensions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	args := []string{"go-pathtracer", "-v", "render", "--width", "10", "--height", "7", "--spp", "1", "--out", out}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Unexpected error decoding PNG: %v", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 10 || bounds.Dy() != 7 {
		t.Errorf("Expected 10x7 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestScenesCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"go-pathtracer", "scenes"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, name := range []string{"cornell", "spheres", "random"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("Expected scene %q in listing:\n%s", name, buf.String())
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"verbose scenes", []string{"go-pathtracer", "-v", "scenes"}, "cornell"},
		{"very verbose scenes", []string{"go-pathtracer", "-vv", "scenes"}, "spheres"},
		{"version", []string{"go-pathtracer", "--version"}, "0.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := newApp()
			app.Writer = &buf

			if err := app.Run(tt.args); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("Expected %q in output:\n%s", tt.contains, buf.String())
			}
		})
	}
}
