package material

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// diffuseNormalization is the divisor applied to the cosine term.
// It is π² rather than the Lambertian π; renders are calibrated against it.
const diffuseNormalization = math.Pi * math.Pi

// Diffuse represents a Lambertian-style matte surface
type Diffuse struct {
	Albedo    core.Vec3 // Reflectance per channel
	Emittance core.Vec3 // Emitted radiance
}

// NewDiffuse creates a non-emitting diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// NewDiffuseEmitter creates a diffuse material that also emits light
func NewDiffuseEmitter(albedo, emittance core.Vec3) (*Diffuse, error) {
	if albedo.MinComponent() < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeAlbedo, albedo)
	}
	if err := validateEmittance(emittance); err != nil {
		return nil, err
	}
	return &Diffuse{Albedo: albedo, Emittance: emittance}, nil
}

// SampleDirection draws a uniform direction on the sphere and mirrors it into
// the hemisphere facing the incoming ray
func (d *Diffuse) SampleDirection(incoming core.Ray, normal core.UnitVec3, sampler core.Sampler) core.UnitVec3 {
	facing := normal.FaceForward(incoming.Direction.Vec3)
	return core.SampleUniformHemisphere(facing, sampler.Get2D())
}

// Transport scales radiance by albedo and cosTheta/π²
func (d *Diffuse) Transport(radiance core.Vec3, cosTheta float64, direct bool) core.Vec3 {
	if cosTheta <= 0 {
		return core.Vec3{}
	}
	return d.Albedo.MultiplyVec(radiance).Multiply(cosTheta / diffuseNormalization)
}

// SupportsNextEventEstimation is true: matte surfaces can be connected to lamps
func (d *Diffuse) SupportsNextEventEstimation() bool {
	return true
}

// Emission returns the emitted radiance
func (d *Diffuse) Emission() core.Vec3 {
	return d.Emittance
}

// SetEmittance makes the surface emit light
func (d *Diffuse) SetEmittance(emittance core.Vec3) error {
	if err := validateEmittance(emittance); err != nil {
		return err
	}
	d.Emittance = emittance
	return nil
}
