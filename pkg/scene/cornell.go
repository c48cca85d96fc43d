package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// quad returns the two triangles spanning corners a, b, c, d in order
func quad(a, b, c, d core.Vec3, mat material.Material) []geometry.Object {
	return []geometry.Object{
		geometry.NewTriangle(a, b, c, mat),
		geometry.NewTriangle(a, c, d, mat),
	}
}

// mustSphere builds a sphere from constants known to be valid
func mustSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		panic(err)
	}
	return sphere
}

// mustEmitter builds an emitting diffuse material from constants known to be valid
func mustEmitter(emittance core.Vec3) *material.Diffuse {
	lamp, err := material.NewDiffuseEmitter(core.Vec3{}, emittance)
	if err != nil {
		panic(err)
	}
	return lamp
}

// mustRefractive builds a refractive material from a constant index
func mustRefractive(index float64) *material.Refractive {
	glass, err := material.NewRefractive(index)
	if err != nil {
		panic(err)
	}
	return glass
}

// mustAdd adds objects to a group whose transform accepts them
func mustAdd(group *geometry.Group, objects ...geometry.Object) {
	if err := group.Add(objects...); err != nil {
		panic(err)
	}
}

// NewCornellScene creates a Cornell box spanning [-1,1]³ with an open front,
// a spherical ceiling lamp and one sphere of each material
func NewCornellScene() *Scene {
	camera := CameraConfig{
		Origin: core.NewVec3(0, 0, 3.4), // Outside the open front of the box
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40,
		Width:  256,
		Height: 256,
	}
	s := NewScene("cornell", camera, DefaultRenderConfig())

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))

	// Box corners
	lbf, rbf := core.NewVec3(-1, -1, 1), core.NewVec3(1, -1, 1)
	lbb, rbb := core.NewVec3(-1, -1, -1), core.NewVec3(1, -1, -1)
	ltf, rtf := core.NewVec3(-1, 1, 1), core.NewVec3(1, 1, 1)
	ltb, rtb := core.NewVec3(-1, 1, -1), core.NewVec3(1, 1, -1)

	walls := geometry.NewGroup("walls")
	var faces []geometry.Object
	faces = append(faces, quad(lbf, rbf, rbb, lbb, white)...) // floor
	faces = append(faces, quad(ltf, ltb, rtb, rtf, white)...) // ceiling
	faces = append(faces, quad(lbb, rbb, rtb, ltb, white)...) // back
	faces = append(faces, quad(lbf, lbb, ltb, ltf, red)...)   // left
	faces = append(faces, quad(rbf, rtf, rtb, rbb, green)...) // right
	mustAdd(walls, faces...)

	glass := mustRefractive(1.5)
	spheres := geometry.NewGroup("spheres")
	mustAdd(spheres,
		mustSphere(core.NewVec3(-0.45, -0.65, -0.3), 0.35, material.NewSpecular()),
		mustSphere(core.NewVec3(0.45, -0.65, 0.25), 0.35, glass),
		mustSphere(core.NewVec3(0.1, -0.8, -0.75), 0.2, material.NewDiffuse(core.NewVec3(0.2, 0.3, 0.8))),
	)

	lamps := geometry.NewGroup("lamps")
	mustAdd(lamps, mustSphere(core.NewVec3(0, 0.8, 0), 0.15, mustEmitter(core.NewVec3(60, 60, 60))))

	s.AddGroup(walls, spheres, lamps)
	return s
}
