package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/kdtree"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const (
	// RayOffset moves continuation and shadow rays off the surface they leave
	RayOffset = 1e-4
	// NEEEpsilon is the smallest surface cosine accepted for a light sample
	NEEEpsilon = 1e-6
	// ShadowTolerance is the relative distance error accepted when checking
	// that a shadow ray reaches the sampled lamp point
	ShadowTolerance = 1e-4
)

// PathTracer implements recursive unidirectional path tracing with Russian
// roulette and next event estimation
type PathTracer struct {
	config  scene.RenderConfig
	objects []geometry.Object
	lamps   []geometry.Object
	tree    *kdtree.Tree // nil selects the linear scan
}

// NewPathTracer creates a path tracer over a flattened scene.
// Pass a nil tree to intersect by brute force.
func NewPathTracer(sc *scene.Scene, tree *kdtree.Tree) *PathTracer {
	return &PathTracer{
		config:  sc.Config,
		objects: sc.Objects(),
		lamps:   sc.Lamps(),
		tree:    tree,
	}
}

// Radiance traces a camera ray
func (pt *PathTracer) Radiance(ray core.Ray, sampler core.Sampler) core.Vec3 {
	return pt.TraceRay(ray, sampler, false, kdtree.NoLeaf, 0)
}

// Intersect finds the nearest object along ray. leaf is the tree leaf the
// ray starts in, or kdtree.NoLeaf when unknown.
func (pt *PathTracer) Intersect(ray core.Ray, leaf int) kdtree.Intersection {
	if pt.tree == nil {
		return kdtree.BruteForce(pt.objects, ray)
	}
	if leaf != kdtree.NoLeaf && pt.tree.Contains(leaf, ray.Origin) {
		return pt.tree.Backward(ray, leaf)
	}
	return pt.tree.Forward(ray)
}

// TraceRay returns the radiance carried back along ray.
//
// directCounted is set when the previous hit already sampled the lamps, so
// emission found by this ray must not be added again. leaf is the tree leaf
// holding the ray origin, if known.
func (pt *PathTracer) TraceRay(ray core.Ray, sampler core.Sampler, directCounted bool, leaf int, bounces int) core.Vec3 {
	cfg := pt.config
	if bounces >= cfg.MaxDepth {
		return core.Vec3{}
	}

	// Russian roulette
	rrFactor := 1.0
	if bounces >= cfg.MinBounces {
		if !cfg.RussianRoulette || sampler.Get1D() < cfg.StopProbability {
			return core.Vec3{}
		}
		rrFactor = 1.0 / (1.0 - cfg.StopProbability)
	}

	hit := pt.Intersect(ray, leaf)
	if !hit.Hit() {
		return core.Vec3{}
	}

	point := ray.At(hit.Distance)
	mat := hit.Object.Material()
	normal := hit.Object.Normal(point)

	var radiance core.Vec3

	nee := cfg.NextEventEstimation && mat.SupportsNextEventEstimation()
	if nee {
		direct := pt.directLight(point, normal.FaceForward(ray.Direction.Vec3), mat, hit.Leaf, sampler)
		radiance.AddAssign(direct.Multiply(rrFactor))
	}

	if !directCounted {
		radiance.AddAssign(mat.Emission().Multiply(rrFactor))
	}

	// Continuation
	direction := mat.SampleDirection(ray, normal, sampler)
	next := core.NewRayUnit(point, direction).Offset(RayOffset)
	incoming := pt.TraceRay(next, sampler, nee, hit.Leaf, bounces+1)
	if !incoming.IsZero() {
		cosTheta := math.Abs(direction.Dot(normal.Vec3))
		radiance.AddAssign(mat.Transport(incoming, cosTheta, false).Multiply(rrFactor))
	}

	return radiance
}

// directLight samples one point on every lamp and returns the unoccluded
// contribution averaged over the lamp count. normal faces the incoming ray.
func (pt *PathTracer) directLight(point core.Vec3, normal core.UnitVec3, mat material.Material, leaf int, sampler core.Sampler) core.Vec3 {
	if len(pt.lamps) == 0 {
		return core.Vec3{}
	}

	var total core.Vec3
	for _, lamp := range pt.lamps {
		target := lamp.RandomSurfacePoint(sampler)
		toLamp := target.Subtract(point)
		distanceSq := toLamp.LengthSquared()
		if distanceSq < core.DegenerateLength {
			continue
		}
		distance := math.Sqrt(distanceSq)
		direction := core.AssumeUnit(toLamp.Divide(distance))

		// Lamp point behind the surface
		cosSurface := normal.Dot(direction.Vec3)
		if cosSurface <= NEEEpsilon {
			continue
		}
		cosLamp := math.Abs(lamp.Normal(target).Dot(direction.Vec3))
		if cosLamp <= 0 {
			continue
		}

		shadow := core.NewRayUnit(point, direction).Offset(RayOffset)
		blocker := pt.Intersect(shadow, leaf)
		if !blocker.Hit() || math.Abs(blocker.Distance-(distance-RayOffset)) > ShadowTolerance*distance {
			continue
		}

		weight := lamp.Area() / distanceSq * cosLamp
		contribution := mat.Transport(lamp.Material().Emission(), cosSurface, true)
		total.AddAssign(contribution.Multiply(weight))
	}

	return total.Multiply(1.0 / float64(len(pt.lamps)))
}
