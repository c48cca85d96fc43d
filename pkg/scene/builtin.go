package scene

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// randomSceneSize is the object count of the "random" built-in
const randomSceneSize = 200

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func() *Scene
}

var builtins = map[string]SceneInfo{
	"cornell": {
		Name:        "cornell",
		Description: "Cornell box with mirror, glass and diffuse spheres",
		build:       NewCornellScene,
	},
	"spheres": {
		Name:        "spheres",
		Description: "Ring of diffuse spheres around a mirror ball, two lamps",
		build:       NewSpheresScene,
	},
	"random": {
		Name:        "random",
		Description: fmt.Sprintf("%d random spheres and triangles with mixed materials", randomSceneSize),
		build: func() *Scene {
			return NewRandomScene(randomSceneSize, 42)
		},
	},
}

// Builtin creates the named built-in scene, already flattened
func Builtin(name string) (*Scene, error) {
	info, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s := info.build()
	s.Flatten()
	return s, nil
}

// ListBuiltins returns the built-in scenes sorted by name
func ListBuiltins() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, info := range builtins {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}
