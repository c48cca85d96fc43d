package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Specular represents a perfect mirror
type Specular struct {
	Emittance core.Vec3
}

// NewSpecular creates a perfect mirror
func NewSpecular() *Specular {
	return &Specular{}
}

// SampleDirection returns the mirror reflection d - 2(d·n)n
func (s *Specular) SampleDirection(incoming core.Ray, normal core.UnitVec3, sampler core.Sampler) core.UnitVec3 {
	return core.NewUnitVec3(incoming.Direction.Reflect(normal.Vec3))
}

// Transport passes radiance through unchanged. A mirror has no response to
// a light sample taken from an arbitrary direction.
func (s *Specular) Transport(radiance core.Vec3, cosTheta float64, direct bool) core.Vec3 {
	if direct {
		return core.Vec3{}
	}
	return radiance
}

// SupportsNextEventEstimation is false for delta reflectors
func (s *Specular) SupportsNextEventEstimation() bool {
	return false
}

// Emission returns the emitted radiance
func (s *Specular) Emission() core.Vec3 {
	return s.Emittance
}

// SetEmittance makes the surface emit light
func (s *Specular) SetEmittance(emittance core.Vec3) error {
	if err := validateEmittance(emittance); err != nil {
		return err
	}
	s.Emittance = emittance
	return nil
}
