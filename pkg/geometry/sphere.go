package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	center   core.Vec3
	radius   float64
	material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %f", ErrInvalidRadius, radius)
	}
	return &Sphere{center: center, radius: radius, material: mat}, nil
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) float64 {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.center)

	// Quadratic t² + bt + c = 0, the direction has unit length
	b := 2 * oc.Dot(ray.Direction.Vec3)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return NoHit
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / 2
	if root > 0 {
		return root
	}
	// Origin inside the sphere, or the sphere is behind the ray
	root = (-b + sqrtD) / 2
	if root > 0 {
		return root
	}
	return NoHit
}

// Normal returns the outward normal at a point on the surface
func (s *Sphere) Normal(point core.Vec3) core.UnitVec3 {
	return core.NewUnitVec3(point.Subtract(s.center).Multiply(1.0 / s.radius))
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.Splat(s.radius)
	return core.NewAABB(s.center.Subtract(radius), s.center.Add(radius))
}

// Center returns the sphere center
func (s *Sphere) Center() core.Vec3 {
	return s.center
}

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Area returns the surface area 4πr²
func (s *Sphere) Area() float64 {
	return 4 * math.Pi * s.radius * s.radius
}

// RandomSurfacePoint returns an area-uniform point on the sphere
func (s *Sphere) RandomSurfacePoint(sampler core.Sampler) core.Vec3 {
	dir := core.SampleOnUnitSphere(sampler.Get2D())
	return s.center.Add(dir.Multiply(s.radius))
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.material
}

// Transformed maps the center and scales the radius by the uniform scale
// factor of linear. Callers must check uniformity first.
func (s *Sphere) Transformed(linear core.Mat3, translation core.Vec3) Object {
	scale := math.Cbrt(math.Abs(linear.Determinant()))
	return &Sphere{
		center:   linear.Apply(s.center).Add(translation),
		radius:   s.radius * scale,
		material: s.material,
	}
}
