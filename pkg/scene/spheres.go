package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSpheresScene creates a ring of diffuse spheres on a floor lit by two lamps
func NewSpheresScene() *Scene {
	camera := CameraConfig{
		Origin: core.NewVec3(0, 2.5, 6),
		LookAt: core.NewVec3(0, 0.3, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   35,
		Width:  320,
		Height: 180,
	}
	s := NewScene("spheres", camera, DefaultRenderConfig())

	floor := geometry.NewGroup("floor")
	ground := material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6))
	mustAdd(floor, quad(
		core.NewVec3(-20, 0, 20),
		core.NewVec3(20, 0, 20),
		core.NewVec3(20, 0, -20),
		core.NewVec3(-20, 0, -20),
		ground,
	)...)

	// Fixed seed keeps the scene identical between runs
	random := rand.New(rand.NewSource(7))
	ring := geometry.NewGroup("ring")
	const count = 12
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / count
		radius := 0.25 + 0.2*random.Float64()
		center := core.NewVec3(2*math.Cos(angle), radius, 2*math.Sin(angle))
		albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64()).Multiply(0.8)
		mustAdd(ring, mustSphere(center, radius, material.NewDiffuse(albedo)))
	}
	mustAdd(ring, mustSphere(core.NewVec3(0, 0.6, 0), 0.6, material.NewSpecular()))

	lamps := geometry.NewGroup("lamps")
	mustAdd(lamps,
		mustSphere(core.NewVec3(-3, 4, 2), 0.5, mustEmitter(core.NewVec3(40, 36, 30))),
		mustSphere(core.NewVec3(3, 3, -1), 0.3, mustEmitter(core.NewVec3(20, 24, 40))),
	)

	s.AddGroup(floor, ring, lamps)
	return s
}
