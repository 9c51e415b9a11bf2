package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidLight is returned when a light violates its invariants
var ErrInvalidLight = errors.New("invalid light")

// Light is one of AmbientLight, PointLight or DirectionalLight.
// The set is closed: only types in this package implement it.
type Light interface {
	// Intensity returns the light's scalar intensity, typically in [0,1]
	Intensity() float64
	// Kind returns a short name for logging
	Kind() string

	isLight()
}

// AmbientLight lights every point equally
type AmbientLight struct {
	Power float64
}

// PointLight radiates from a position in space
type PointLight struct {
	Power    float64
	Position core.Vec3
}

// DirectionalLight arrives from infinitely far away.
// Direction points from the surface toward the light and is not normalized.
type DirectionalLight struct {
	Power     float64
	Direction core.Vec3
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(intensity float64) AmbientLight {
	return AmbientLight{Power: intensity}
}

// NewPointLight creates a point light at position
func NewPointLight(intensity float64, position core.Vec3) PointLight {
	return PointLight{Power: intensity, Position: position}
}

// NewDirectionalLight creates a directional light shining from direction
func NewDirectionalLight(intensity float64, direction core.Vec3) DirectionalLight {
	return DirectionalLight{Power: intensity, Direction: direction}
}

func (l AmbientLight) Intensity() float64     { return l.Power }
func (l PointLight) Intensity() float64       { return l.Power }
func (l DirectionalLight) Intensity() float64 { return l.Power }

func (AmbientLight) Kind() string     { return "ambient" }
func (PointLight) Kind() string       { return "point" }
func (DirectionalLight) Kind() string { return "directional" }

func (AmbientLight) isLight()     {}
func (PointLight) isLight()       {}
func (DirectionalLight) isLight() {}

// ValidateLight checks the light invariants
func ValidateLight(l Light) error {
	if l == nil {
		return fmt.Errorf("%w: nil light", ErrInvalidLight)
	}
	if l.Intensity() < 0 {
		return fmt.Errorf("%w: %s intensity must not be negative, got %g", ErrInvalidLight, l.Kind(), l.Intensity())
	}
	if d, ok := l.(DirectionalLight); ok && d.Direction.IsZero() {
		return fmt.Errorf("%w: directional light needs a nonzero direction", ErrInvalidLight)
	}
	return nil
}
