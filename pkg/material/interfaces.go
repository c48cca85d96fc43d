package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	ErrNegativeEmittance = errors.New("material: emittance must be non-negative")
	ErrNegativeAlbedo    = errors.New("material: albedo must be non-negative")
	ErrInvalidIndex      = errors.New("material: refractive index must be positive")
)

// Material describes how a surface scatters, weights and emits light.
type Material interface {
	// SampleDirection picks the continuation direction for a ray that hit a
	// surface with the given geometric normal.
	SampleDirection(incoming core.Ray, normal core.UnitVec3, sampler core.Sampler) core.UnitVec3

	// Transport weights radiance arriving along a direction whose cosine with
	// the surface normal is cosTheta. direct is set for light-sample
	// connections made by next event estimation.
	Transport(radiance core.Vec3, cosTheta float64, direct bool) core.Vec3

	// SupportsNextEventEstimation reports whether lamps may be sampled
	// directly from this surface.
	SupportsNextEventEstimation() bool

	// Emission returns the radiance emitted by the surface.
	Emission() core.Vec3
}

// IsEmitter reports whether m emits any light
func IsEmitter(m Material) bool {
	return m != nil && !m.Emission().IsZero()
}

// validateEmittance rejects negative emission components
func validateEmittance(emittance core.Vec3) error {
	if emittance.MinComponent() < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeEmittance, emittance)
	}
	return nil
}
