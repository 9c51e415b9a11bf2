package scene

import (
	"fmt"
)

// Scene is a fixed, ordered collection of spheres and lights.
// It is built once by New and is read-only afterwards; order is significant
// because intersection ties go to the sphere declared first.
type Scene struct {
	name    string
	spheres []Sphere
	lights  []Light
}

// New validates and copies the given spheres and lights into a scene
func New(name string, spheres []Sphere, lights []Light) (*Scene, error) {
	for i, s := range spheres {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("scene %q: sphere %d: %w", name, i, err)
		}
	}
	for i, l := range lights {
		if err := ValidateLight(l); err != nil {
			return nil, fmt.Errorf("scene %q: light %d: %w", name, i, err)
		}
	}

	return &Scene{
		name:    name,
		spheres: append([]Sphere(nil), spheres...),
		lights:  append([]Light(nil), lights...),
	}, nil
}

// MustNew is like New but panics on invalid input. Intended for compile-time scenes.
func MustNew(name string, spheres []Sphere, lights []Light) *Scene {
	s, err := New(name, spheres, lights)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the scene identifier
func (s *Scene) Name() string {
	return s.name
}

// Spheres returns the spheres in declaration order. Callers must not modify the slice.
func (s *Scene) Spheres() []Sphere {
	return s.spheres
}

// Lights returns the lights in declaration order. Callers must not modify the slice.
func (s *Scene) Lights() []Light {
	return s.lights
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.spheres)
}
