package core

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction UnitVec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: NewUnitVec3(direction)}
}

// NewRayUnit creates a ray from an already validated direction
func NewRayUnit(origin Vec3, direction UnitVec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Offset returns the same ray with its origin moved eps along the direction.
// Used to keep secondary rays from re-hitting the surface they leave.
func (r Ray) Offset(eps float64) Ray {
	return Ray{Origin: r.At(eps), Direction: r.Direction}
}
