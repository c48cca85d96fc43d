package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestGroup_Transform(t *testing.T) {
	sphere, _ := NewSphere(core.NewVec3(1, 0, 0), 1.0, grey())
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), grey())

	group := NewGroup("test")
	if err := group.Add(sphere, triangle); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	linear := core.RotationMat3(core.NewVec3(0, 0, math.Pi/2)).Mul(core.ScaleMat3(core.Splat(2)))
	if err := group.SetTransform(linear, core.NewVec3(0, 0, 5)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	objects := group.Objects()
	if len(objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(objects))
	}

	moved := objects[0].(*Sphere)
	if !moved.Center().Equals(core.NewVec3(0, 2, 5), 1e-9) {
		t.Errorf("Expected sphere center (0,2,5), got %v", moved.Center())
	}
	if math.Abs(moved.Radius()-2) > 1e-9 {
		t.Errorf("Expected sphere radius 2, got %f", moved.Radius())
	}

	v0, v1, v2 := objects[1].(*Triangle).Vertices()
	if !v0.Equals(core.NewVec3(0, 0, 5), 1e-9) || !v1.Equals(core.NewVec3(0, 2, 5), 1e-9) || !v2.Equals(core.NewVec3(-2, 0, 5), 1e-9) {
		t.Errorf("Unexpected transformed vertices %v %v %v", v0, v1, v2)
	}

	// The originals are untouched
	if !sphere.Center().Equals(core.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Original sphere was modified: %v", sphere.Center())
	}
}

func TestGroup_NonUniformScale(t *testing.T) {
	sphere, _ := NewSphere(core.NewVec3(0, 0, 0), 1.0, grey())
	stretch := core.ScaleMat3(core.NewVec3(1, 2, 1))

	group := NewGroup("spheres")
	_ = group.Add(sphere)
	if err := group.SetTransform(stretch, core.Vec3{}); !errors.Is(err, ErrNonUniformScale) {
		t.Errorf("Expected ErrNonUniformScale, got %v", err)
	}

	triangles := NewGroup("triangles")
	_ = triangles.Add(NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), grey()))
	if err := triangles.SetTransform(stretch, core.Vec3{}); err != nil {
		t.Fatalf("Triangles accept non-uniform scale, got %v", err)
	}
	if err := triangles.Add(sphere); !errors.Is(err, ErrNonUniformScale) {
		t.Errorf("Expected ErrNonUniformScale adding a sphere, got %v", err)
	}
}

func TestGroup_Lamps(t *testing.T) {
	light, _ := material.NewDiffuseEmitter(core.NewVec3(0, 0, 0), core.NewVec3(5, 5, 5))
	lamp, _ := NewSphere(core.NewVec3(0, 5, 0), 0.5, light)
	floor := NewTriangle(core.NewVec3(-1, 0, -1), core.NewVec3(1, 0, -1), core.NewVec3(0, 0, 1), grey())

	group := NewGroup("room")
	_ = group.Add(floor, lamp)

	lamps := group.Lamps()
	if len(lamps) != 1 || lamps[0] != Object(lamp) {
		t.Errorf("Expected only the emitting sphere as lamp, got %v", lamps)
	}
	if IsLamp(floor) {
		t.Error("Floor should not be a lamp")
	}
}
