package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	ErrInvalidDimensions = errors.New("scene: image dimensions must be positive")
	ErrInvalidFov        = errors.New("scene: vertical field of view must be in (0, 180)")
	ErrDegenerateView    = errors.New("scene: camera view is degenerate")
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Origin core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up direction (usually (0,1,0))
	VFov   float64   // Vertical field of view in degrees
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
}

// DefaultCameraConfig returns a camera at (0,0,3) looking at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin: core.NewVec3(0, 0, 3),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45,
		Width:  200,
		Height: 200,
	}
}

// Validate rejects configurations that cannot produce rays
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: got %f", ErrInvalidFov, c.VFov)
	}
	forward := c.LookAt.Subtract(c.Origin)
	if forward.LengthSquared() < core.DegenerateLength {
		return fmt.Errorf("%w: origin equals look-at point", ErrDegenerateView)
	}
	if forward.Cross(c.Up).LengthSquared() < core.DegenerateLength {
		return fmt.Errorf("%w: up vector parallel to view direction", ErrDegenerateView)
	}
	return nil
}

// Camera generates primary rays for pixel coordinates
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a pinhole camera from a validated configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	aspectRatio := float64(config.Width) / float64(config.Height)
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis: w points backwards, u right, v up
	w := config.Origin.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.Origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		config:          config,
		origin:          config.Origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}, nil
}

// Ray returns the ray through image position (px, py), measured in pixels
// from the top-left corner
func (c *Camera) Ray(px, py float64) core.Ray {
	s := px / float64(c.config.Width)
	t := 1 - py/float64(c.config.Height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
