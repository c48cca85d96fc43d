package core

// UnitVec3 is a direction guaranteed to have unit length.
//
// Values are produced by NewUnitVec3, which renormalizes its argument unless
// the argument already carries the normalized flag, or by AssumeUnit, which
// trusts the caller.
type UnitVec3 struct {
	Vec3
}

// fallbackDirection is returned for vectors too short to normalize
var fallbackDirection = Vec3{X: 0, Y: 0, Z: 1, normalized: true}

// NewUnitVec3 casts v to a unit vector, normalizing it if necessary.
// Degenerate input yields +Z.
func NewUnitVec3(v Vec3) UnitVec3 {
	if v.normalized {
		return UnitVec3{v}
	}
	if v.LengthSquared() < DegenerateLength*DegenerateLength {
		return UnitVec3{fallbackDirection}
	}
	return UnitVec3{v.Normalize()}
}

// NewUnitVec3XYZ normalizes (x, y, z)
func NewUnitVec3XYZ(x, y, z float64) UnitVec3 {
	return NewUnitVec3(NewVec3(x, y, z))
}

// AssumeUnit marks v as unit length without checking it.
func AssumeUnit(v Vec3) UnitVec3 {
	v.normalized = true
	return UnitVec3{v}
}

// Negate returns the opposite direction
func (u UnitVec3) Negate() UnitVec3 {
	return UnitVec3{u.Vec3.Negate()}
}

// FaceForward returns u oriented against d (so that u·d <= 0)
func (u UnitVec3) FaceForward(d Vec3) UnitVec3 {
	if u.Dot(d) > 0 {
		return u.Negate()
	}
	return u
}
