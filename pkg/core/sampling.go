package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Reseed restarts the underlying generator from seed
func (r *RandomSampler) Reseed(seed int64) {
	r.random.Seed(seed)
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// PixelSeed derives an independent, scheduling-free seed for one pixel task
func PixelSeed(seed int64, x, y int) int64 {
	h := uint64(seed)*0x9E3779B97F4A7C15 ^ uint64(x)*0xBF58476D1CE4E5B9 ^ uint64(y)*0x94D049BB133111EB
	h ^= h >> 31
	h *= 0xD6E8FEB86659FD93
	h ^= h >> 32
	return int64(h)
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) UnitVec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewUnitVec3(NewVec3(x, y, z))
}

// SampleUniformHemisphere draws a uniform direction on the sphere and mirrors
// it into the hemisphere around normal
func SampleUniformHemisphere(normal UnitVec3, sample Vec2) UnitVec3 {
	dir := SampleOnUnitSphere(sample)
	if dir.Dot(normal.Vec3) < 0 {
		return dir.Negate()
	}
	return dir
}

// SampleTriangle maps a 2D sample to area-uniform barycentric weights
// (w0, w1, w2) using u = √r1, v = r2
func SampleTriangle(sample Vec2) (float64, float64, float64) {
	u := math.Sqrt(sample.X)
	v := sample.Y
	return 1 - u, u * (1 - v), u * v
}
