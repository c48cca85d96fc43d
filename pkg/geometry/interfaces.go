package geometry

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NoHit is returned by Intersect when the ray misses
const NoHit = -1.0

var (
	ErrInvalidRadius   = errors.New("geometry: sphere radius must be positive")
	ErrNonUniformScale = errors.New("geometry: spheres require a uniform scale")
)

// Object is a renderable primitive owning exactly one material
type Object interface {
	// Intersect returns the distance along ray to the nearest surface point,
	// or a negative value when there is none.
	Intersect(ray core.Ray) float64
	Normal(point core.Vec3) core.UnitVec3
	BoundingBox() core.AABB
	Center() core.Vec3
	Area() float64
	RandomSurfacePoint(sampler core.Sampler) core.Vec3
	Material() material.Material
}

// Transformable objects can produce a copy of themselves under an affine map
type Transformable interface {
	Transformed(linear core.Mat3, translation core.Vec3) Object
}

// IsLamp reports whether the object emits light
func IsLamp(object Object) bool {
	return material.IsEmitter(object.Material())
}
