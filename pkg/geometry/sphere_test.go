package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func grey() material.Material {
	return material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Intersect(t *testing.T) {
	sphere, err := NewSphere(core.NewVec3(0, 0, 3), 1.0, grey())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		ray      core.Ray
		expected float64
	}{
		{
			name:     "Ray hits front of sphere",
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			expected: 2.0,
		},
		{
			name:     "Ray starts inside sphere",
			ray:      core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1)),
			expected: 1.0,
		},
		{
			name:     "Ray misses sphere",
			ray:      core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, 1)),
			expected: NoHit,
		},
		{
			name:     "Sphere behind ray",
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expected: NoHit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphere.Intersect(tt.ray)
			if tt.expected < 0 {
				if got >= 0 {
					t.Errorf("Expected miss, got t=%f", got)
				}
				return
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expected, got)
			}
		})
	}
}

func TestSphere_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1} {
		if _, err := NewSphere(core.NewVec3(0, 0, 0), radius, grey()); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("Radius %f: expected ErrInvalidRadius, got %v", radius, err)
		}
	}
}

func TestSphere_NormalAndBounds(t *testing.T) {
	sphere, _ := NewSphere(core.NewVec3(1, 2, 3), 2.0, grey())

	normal := sphere.Normal(core.NewVec3(1, 4, 3))
	if !normal.Equals(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected normal (0,1,0), got %v", normal)
	}

	bbox := sphere.BoundingBox()
	if !bbox.Min.Equals(core.NewVec3(-1, 0, 1), 1e-12) || !bbox.Max.Equals(core.NewVec3(3, 4, 5), 1e-12) {
		t.Errorf("Unexpected bounding box %v", bbox)
	}

	if math.Abs(sphere.Area()-16*math.Pi) > 1e-9 {
		t.Errorf("Expected area 16π, got %f", sphere.Area())
	}
}

func TestSphere_RandomSurfacePoint(t *testing.T) {
	center := core.NewVec3(1, -1, 2)
	sphere, _ := NewSphere(center, 0.5, grey())
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 500; i++ {
		p := sphere.RandomSurfacePoint(sampler)
		if d := p.Subtract(center).Length(); math.Abs(d-0.5) > 1e-9 {
			t.Fatalf("Point %v is %f from the center, expected 0.5", p, d)
		}
	}
}
