package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ParallelEpsilon is the determinant magnitude below which a ray is treated
// as parallel to the triangle plane
const ParallelEpsilon = 1e-12

// Triangle represents a single triangle defined by three vertices.
// The winding order v0, v1, v2 defines the normal direction.
type Triangle struct {
	v0, v1, v2 core.Vec3
	material   material.Material

	normal core.UnitVec3 // Cached normal vector
	area   float64
	bbox   core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{material: mat}
	t.SetVertices(v0, v1, v2)
	return t
}

// SetVertices replaces the vertices and recomputes cached normal, area and bounds
func (t *Triangle) SetVertices(v0, v1, v2 core.Vec3) {
	t.v0, t.v1, t.v2 = v0, v1, v2

	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	t.normal = core.NewUnitVec3(cross)
	t.area = 0.5 * cross.Length()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
}

// Vertices returns the three vertices in winding order
func (t *Triangle) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return t.v0, t.v1, t.v2
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) float64 {
	edge1 := t.v1.Subtract(t.v0)
	edge2 := t.v2.Subtract(t.v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if math.Abs(a) < ParallelEpsilon {
		return NoHit
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return NoHit
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return NoHit
	}

	return f * edge2.Dot(q)
}

// Normal returns the triangle's normal vector
func (t *Triangle) Normal(point core.Vec3) core.UnitVec3 {
	return t.normal
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Center returns the centroid
func (t *Triangle) Center() core.Vec3 {
	return t.v0.Add(t.v1).Add(t.v2).Multiply(1.0 / 3.0)
}

// Area returns half the length of edge1 × edge2
func (t *Triangle) Area() float64 {
	return t.area
}

// RandomSurfacePoint returns an area-uniform point on the triangle
func (t *Triangle) RandomSurfacePoint(sampler core.Sampler) core.Vec3 {
	w0, w1, w2 := core.SampleTriangle(sampler.Get2D())
	return t.v0.Multiply(w0).Add(t.v1.Multiply(w1)).Add(t.v2.Multiply(w2))
}

// Material returns the triangle's material
func (t *Triangle) Material() material.Material {
	return t.material
}

// Transformed returns a new triangle with every vertex mapped
func (t *Triangle) Transformed(linear core.Mat3, translation core.Vec3) Object {
	apply := func(v core.Vec3) core.Vec3 {
		return linear.Apply(v).Add(translation)
	}
	return NewTriangle(apply(t.v0), apply(t.v1), apply(t.v2), t.material)
}
