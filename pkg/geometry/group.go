package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// uniformTolerance bounds the relative difference between basis lengths of a
// uniform scale
const uniformTolerance = 1e-9

// Group is a named collection of objects sharing one affine transform
type Group struct {
	Name string

	objects     []Object
	linear      core.Mat3
	translation core.Vec3
}

// NewGroup creates an empty group with the identity transform
func NewGroup(name string) *Group {
	return &Group{Name: name, linear: core.IdentityMat3()}
}

// Add appends objects to the group.
// Spheres are rejected when the current transform is not a uniform scale.
func (g *Group) Add(objects ...Object) error {
	for _, object := range objects {
		if _, ok := object.(*Sphere); ok && !isUniform(g.linear) {
			return ErrNonUniformScale
		}
	}
	g.objects = append(g.objects, objects...)
	return nil
}

// SetTransform sets the linear part and translation applied by Objects
func (g *Group) SetTransform(linear core.Mat3, translation core.Vec3) error {
	if !isUniform(linear) && g.hasSphere() {
		return ErrNonUniformScale
	}
	g.linear = linear
	g.translation = translation
	return nil
}

// Len returns the number of objects in the group
func (g *Group) Len() int {
	return len(g.objects)
}

// Objects returns the group's objects in world space
func (g *Group) Objects() []Object {
	identity := g.linear.IsIdentity(1e-12) && g.translation.IsZero()
	out := make([]Object, 0, len(g.objects))
	for _, object := range g.objects {
		if t, ok := object.(Transformable); ok && !identity {
			out = append(out, t.Transformed(g.linear, g.translation))
			continue
		}
		out = append(out, object)
	}
	return out
}

// Lamps returns the emitting subset of Objects
func (g *Group) Lamps() []Object {
	var lamps []Object
	for _, object := range g.Objects() {
		if IsLamp(object) {
			lamps = append(lamps, object)
		}
	}
	return lamps
}

func (g *Group) hasSphere() bool {
	for _, object := range g.objects {
		if _, ok := object.(*Sphere); ok {
			return true
		}
	}
	return false
}

// isUniform reports whether m maps the basis to orthogonal vectors of equal length
func isUniform(m core.Mat3) bool {
	cols := [3]core.Vec3{
		m.Apply(core.NewVec3(1, 0, 0)),
		m.Apply(core.NewVec3(0, 1, 0)),
		m.Apply(core.NewVec3(0, 0, 1)),
	}
	lengthSq := cols[0].LengthSquared()
	if lengthSq == 0 {
		return false
	}
	for i := 0; i < 3; i++ {
		if math.Abs(cols[i].LengthSquared()-lengthSq) > uniformTolerance*lengthSq {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if math.Abs(cols[i].Dot(cols[j])) > uniformTolerance*lengthSq {
				return false
			}
		}
	}
	return true
}
