package material

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ambientIndex is the refractive index outside every medium (air)
const ambientIndex = 1.0

// Refractive represents a transparent dielectric like glass that can both
// reflect and refract
type Refractive struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
	Emittance       core.Vec3
}

// NewRefractive creates a new dielectric material
func NewRefractive(refractiveIndex float64) (*Refractive, error) {
	if refractiveIndex <= 0 {
		return nil, fmt.Errorf("%w: got %f", ErrInvalidIndex, refractiveIndex)
	}
	return &Refractive{RefractiveIndex: refractiveIndex}, nil
}

// SampleDirection chooses between reflection and refraction.
//
// The ray enters the medium when -(n·d) > 0. When exiting, the normal is
// flipped and the indices swapped. Reflection happens on total internal
// reflection, or with the Schlick probability when entering.
func (r *Refractive) SampleDirection(incoming core.Ray, normal core.UnitVec3, sampler core.Sampler) core.UnitVec3 {
	d := incoming.Direction.Vec3
	n := normal.Vec3
	n1, n2 := ambientIndex, r.RefractiveIndex

	cosI := -n.Dot(d)
	inside := cosI < 0
	if inside {
		n = n.Negate()
		cosI = -cosI
		n1, n2 = n2, n1
	}

	eta := n1 / n2
	discriminant := 1 - eta*eta*(1-cosI*cosI)

	if discriminant <= 0 {
		return core.NewUnitVec3(d.Reflect(n))
	}
	if !inside && sampler.Get1D() < ReflectionProbability(cosI, n1, n2) {
		return core.NewUnitVec3(d.Reflect(n))
	}

	refracted := d.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(discriminant)))
	return core.NewUnitVec3(refracted)
}

// Transport passes radiance through unchanged; the Fresnel weighting is
// carried by the reflect/refract choice
func (r *Refractive) Transport(radiance core.Vec3, cosTheta float64, direct bool) core.Vec3 {
	if direct {
		return core.Vec3{}
	}
	return radiance
}

// SupportsNextEventEstimation is false for delta interfaces
func (r *Refractive) SupportsNextEventEstimation() bool {
	return false
}

// Emission returns the emitted radiance
func (r *Refractive) Emission() core.Vec3 {
	return r.Emittance
}

// SetEmittance makes the surface emit light
func (r *Refractive) SetEmittance(emittance core.Vec3) error {
	if err := validateEmittance(emittance); err != nil {
		return err
	}
	r.Emittance = emittance
	return nil
}

// ReflectionProbability returns Schlick's approximation of the Fresnel
// reflectance for light travelling from index n1 into n2
func ReflectionProbability(cosine, n1, n2 float64) float64 {
	r0 := (n1 - n2) / (n1 + n2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
