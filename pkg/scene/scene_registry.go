package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Lookup for names that are not built in
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"display_name"`
	Description string `json:"description" yaml:"description"`
}

type builtin struct {
	info SceneInfo
	new  func() *Scene
}

var builtins = map[string]builtin{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Red, green, blue and white spheres over a yellow floor with ambient, point and directional light",
		},
		new: NewDefaultScene,
	},
	"ambient": {
		info: SceneInfo{
			ID:          "ambient",
			DisplayName: "Ambient Only",
			Description: "Default spheres lit by ambient light alone",
		},
		new: NewAmbientScene,
	},
	"mirror": {
		info: SceneInfo{
			ID:          "mirror",
			DisplayName: "Mirror Spheres",
			Description: "Highly reflective spheres showing two levels of reflection",
		},
		new: NewMirrorScene,
	},
}

// Lookup builds the built-in scene registered under name
func Lookup(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.new(), nil
}

// ListScenes returns all built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}
