package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Mat3 is a 3x3 linear transform (rotation and scale) in column-major order
type Mat3 struct {
	m mgl64.Mat3
}

// IdentityMat3 returns the identity transform
func IdentityMat3() Mat3 {
	return Mat3{m: mgl64.Ident3()}
}

// RotationMat3 builds a rotation from Euler angles in radians.
// The rotation is applied around X first, then Y, then Z.
func RotationMat3(angles Vec3) Mat3 {
	rx := mgl64.Rotate3DX(angles.X)
	ry := mgl64.Rotate3DY(angles.Y)
	rz := mgl64.Rotate3DZ(angles.Z)
	return Mat3{m: rz.Mul3(ry).Mul3(rx)}
}

// ScaleMat3 builds a per-axis scale
func ScaleMat3(scale Vec3) Mat3 {
	return Mat3{m: mgl64.Diag3(mgl64.Vec3{scale.X, scale.Y, scale.Z})}
}

// Mul returns m * other, i.e. other is applied first
func (m Mat3) Mul(other Mat3) Mat3 {
	return Mat3{m: m.m.Mul3(other.m)}
}

// Apply transforms v
func (m Mat3) Apply(v Vec3) Vec3 {
	r := m.m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return NewVec3(r[0], r[1], r[2])
}

// At returns the element at row, col
func (m Mat3) At(row, col int) float64 {
	return m.m.At(row, col)
}

// Determinant returns the determinant of the transform
func (m Mat3) Determinant() float64 {
	return m.m.Det()
}

// IsIdentity reports whether m is the identity within tolerance
func (m Mat3) IsIdentity(tolerance float64) bool {
	return m.m.ApproxEqualThreshold(mgl64.Ident3(), tolerance)
}

// Rotate rotates v by Euler angles (X, then Y, then Z)
func (v Vec3) Rotate(angles Vec3) Vec3 {
	return RotationMat3(angles).Apply(v)
}
