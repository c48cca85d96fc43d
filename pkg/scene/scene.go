// Package scene holds render configuration, camera setup and scene geometry.
package scene

import (
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera CameraConfig
	Config RenderConfig

	groups  []*geometry.Group
	objects []geometry.Object // Flattened world-space objects
	lamps   []geometry.Object // Emitting subset of objects
}

// NewScene creates an empty scene
func NewScene(name string, camera CameraConfig, config RenderConfig) *Scene {
	return &Scene{Name: name, Camera: camera, Config: config}
}

// AddGroup appends groups to the scene
func (s *Scene) AddGroup(groups ...*geometry.Group) {
	s.groups = append(s.groups, groups...)
}

// Groups returns the scene's groups
func (s *Scene) Groups() []*geometry.Group {
	return s.groups
}

// Flatten recomputes the object and lamp lists from the groups.
// Must be called after editing groups and before rendering.
func (s *Scene) Flatten() {
	s.objects = nil
	s.lamps = nil
	for _, group := range s.groups {
		for _, object := range group.Objects() {
			s.objects = append(s.objects, object)
			if geometry.IsLamp(object) {
				s.lamps = append(s.lamps, object)
			}
		}
	}
}

// Objects returns the flattened objects
func (s *Scene) Objects() []geometry.Object {
	return s.objects
}

// Lamps returns the flattened emitting objects
func (s *Scene) Lamps() []geometry.Object {
	return s.lamps
}
