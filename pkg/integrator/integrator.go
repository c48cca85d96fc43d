package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance estimates the radiance arriving along a camera ray
	Radiance(ray core.Ray, sampler core.Sampler) core.Vec3
}
