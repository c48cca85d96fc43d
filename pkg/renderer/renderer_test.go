package renderer

import (
	"bytes"
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// smallCornell returns a low resolution Cornell box suitable for tests
func smallCornell(t *testing.T, threads int) *scene.Scene {
	t.Helper()
	sc, err := scene.Builtin("cornell")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sc.Camera.Width = 12
	sc.Camera.Height = 10
	sc.Config.SamplesPerPixel = 4
	sc.Config.Threads = threads
	return sc
}

func TestRender_Dimensions(t *testing.T) {
	sc := smallCornell(t, 2)
	picture, stats, err := NewRenderer(sc).Render()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if picture.Width != 12 || picture.Height != 10 || len(picture.Pixels()) != 120 {
		t.Fatalf("Expected 12x10 picture, got %dx%d with %d pixels", picture.Width, picture.Height, len(picture.Pixels()))
	}
	if picture.MeanLuminance() <= 0 {
		t.Error("Expected a lit Cornell box")
	}
	for i, pixel := range picture.Pixels() {
		if math.IsNaN(pixel.X) || math.IsNaN(pixel.Y) || math.IsNaN(pixel.Z) || pixel.MinComponent() < 0 {
			t.Fatalf("Pixel %d has invalid radiance %v", i, pixel)
		}
	}

	if stats.TotalSamples != 12*10*4 || stats.Threads != 2 || stats.Objects != len(sc.Objects()) {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if !stats.TreeEnabled || stats.Tree.Leaves == 0 {
		t.Errorf("Expected k-d tree stats, got %+v", stats.Tree)
	}
	if stats.Duration <= 0 {
		t.Error("Expected positive render duration")
	}
}

func TestRender_DeterministicAcrossThreadCounts(t *testing.T) {
	render := func(threads int, tree bool) *Picture {
		sc := smallCornell(t, threads)
		sc.Config.KDTree = tree
		picture, _, err := NewRenderer(sc).Render()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return picture
	}

	for _, tree := range []bool{false, true} {
		single := render(1, tree)
		multi := render(4, tree)
		for i := range single.Pixels() {
			if single.Pixels()[i] != multi.Pixels()[i] {
				t.Fatalf("Tree=%v: pixel %d differs between 1 and 4 threads: %v vs %v",
					tree, i, single.Pixels()[i], multi.Pixels()[i])
			}
		}
	}
}

func TestRender_SeedChangesOutput(t *testing.T) {
	a := smallCornell(t, 2)
	b := smallCornell(t, 2)
	b.Config.Seed = a.Config.Seed + 1

	pa, _, _ := NewRenderer(a).Render()
	pb, _, _ := NewRenderer(b).Render()

	same := true
	for i := range pa.Pixels() {
		if pa.Pixels()[i] != pb.Pixels()[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected different seeds to produce different noise")
	}
}

func TestRender_Progress(t *testing.T) {
	sc := smallCornell(t, 3)
	renderer := NewRenderer(sc)

	var columns []int
	renderer.SetProgress(func(column, total int) {
		if total != 12 {
			t.Errorf("Expected 12 columns, got %d", total)
		}
		columns = append(columns, column)
	})

	if _, _, err := renderer.Render(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(columns) != 12 {
		t.Fatalf("Expected 12 progress calls, got %d", len(columns))
	}
	for i, column := range columns {
		if column != i+1 {
			t.Errorf("Expected column %d, got %d", i+1, column)
		}
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	sc := smallCornell(t, 1)
	sc.Config.SamplesPerPixel = 0
	if _, _, err := NewRenderer(sc).Render(); !errors.Is(err, scene.ErrInvalidSamples) {
		t.Errorf("Expected ErrInvalidSamples, got %v", err)
	}

	sc = smallCornell(t, 1)
	sc.Camera.Width = 0
	if _, _, err := NewRenderer(sc).Render(); !errors.Is(err, scene.ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
}

func TestRenderStats_WriteTable(t *testing.T) {
	sc := smallCornell(t, 1)
	_, stats, err := NewRenderer(sc).Render()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var buf bytes.Buffer
	stats.WriteTable(&buf)
	out := buf.String()
	for _, want := range []string{"cornell", "12x10", "K-d tree nodes", "Render time"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, out)
		}
	}

	stats.TreeEnabled = false
	buf.Reset()
	stats.WriteTable(&buf)
	if !strings.Contains(buf.String(), "disabled") {
		t.Errorf("Expected disabled k-d tree row:\n%s", buf.String())
	}
}

func TestPicture(t *testing.T) {
	picture := NewPicture(3, 2)
	picture.Set(0, 0, core.NewVec3(1, 1, 1))
	picture.Add(2, 1, core.NewVec3(0.5, 0, 0))
	picture.Add(2, 1, core.NewVec3(0.5, 0, 0))

	if got := picture.Radiance(2, 1); !got.Equals(core.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Expected accumulated (1,0,0), got %v", got)
	}
	if got := picture.Pixels()[5]; !got.Equals(core.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Expected row-major layout, got %v at index 5", got)
	}

	expectedMax := 1.0
	if got := picture.MaxLuminance(); math.Abs(got-expectedMax) > 1e-12 {
		t.Errorf("Expected max luminance %f, got %f", expectedMax, got)
	}
	expectedMean := (1.0 + 0.299) / 6
	if got := picture.MeanLuminance(); math.Abs(got-expectedMean) > 1e-12 {
		t.Errorf("Expected mean luminance %f, got %f", expectedMean, got)
	}
}

func TestDefaultThreads(t *testing.T) {
	if DefaultThreads() < 1 {
		t.Errorf("Expected at least one thread, got %d", DefaultThreads())
	}
}

func TestRender_AutoThreads(t *testing.T) {
	sc := smallCornell(t, 0)
	sc.Camera.Width, sc.Camera.Height = 4, 3
	sc.Config.SamplesPerPixel = 1

	_, stats, err := NewRenderer(sc).Render()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.Threads != DefaultThreads() {
		t.Errorf("Expected %d threads, got %d", DefaultThreads(), stats.Threads)
	}
}

func TestRender_WarnsWithoutLamps(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	defer log.SetSink(os.Stdout)

	camera := scene.DefaultCameraConfig()
	camera.Width, camera.Height = 4, 3
	sc := scene.NewScene("dark", camera, scene.DefaultRenderConfig())
	group := geometry.NewGroup("floor")
	floor := geometry.NewTriangle(core.NewVec3(-5, -1, 5), core.NewVec3(5, -1, 5), core.NewVec3(0, -1, -5), material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)))
	if err := group.Add(floor); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sc.AddGroup(group)
	sc.Config.SamplesPerPixel = 1

	picture, _, err := NewRenderer(sc).Render()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if picture.MaxLuminance() != 0 {
		t.Errorf("Expected a black image, got max luminance %f", picture.MaxLuminance())
	}
	if !strings.Contains(buf.String(), "has no lamps") {
		t.Errorf("Expected a warning about missing lamps, got %q", buf.String())
	}
}
