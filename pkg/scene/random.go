package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewRandomScene scatters n spheres and triangles with mixed materials
// through the cube [-5,5]³. Roughly one object in ten is a lamp.
func NewRandomScene(n int, seed int64) *Scene {
	camera := CameraConfig{
		Origin: core.NewVec3(0, 0, 16),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
		Width:  200,
		Height: 200,
	}
	s := NewScene("random", camera, DefaultRenderConfig())

	random := rand.New(rand.NewSource(seed))
	point := func(extent float64) core.Vec3 {
		return core.NewVec3(
			(random.Float64()*2-1)*extent,
			(random.Float64()*2-1)*extent,
			(random.Float64()*2-1)*extent,
		)
	}
	glass := mustRefractive(1.5)

	group := geometry.NewGroup("random")
	for i := 0; i < n; i++ {
		var mat material.Material
		switch roll := random.Float64(); {
		case roll < 0.1:
			mat = mustEmitter(core.NewVec3(5, 5, 5).Add(point(2)))
		case roll < 0.2:
			mat = material.NewSpecular()
		case roll < 0.3:
			mat = glass
		default:
			mat = material.NewDiffuse(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
		}

		if random.Float64() < 0.5 {
			mustAdd(group, mustSphere(point(5), 0.1+0.4*random.Float64(), mat))
			continue
		}
		p := point(5)
		mustAdd(group, geometry.NewTriangle(p, p.Add(point(1)), p.Add(point(1)), mat))
	}

	s.AddGroup(group)
	return s
}
