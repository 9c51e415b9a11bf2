package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ErrInvalidSphere is returned when a sphere violates its invariants
var ErrInvalidSphere = errors.New("invalid sphere")

// Sphere is a colored sphere with Phong-style shininess and mirror reflectivity
type Sphere struct {
	Center      core.Vec3
	Radius      float64
	Color       core.Vec3 // RGB, 0-255
	SpecularExp float64   // 0 disables the specular highlight
	Reflection  float64   // Fraction of the final color taken from the mirrored ray, [0,1]
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3, specularExp, reflection float64) Sphere {
	return Sphere{
		Center:      center,
		Radius:      radius,
		Color:       color,
		SpecularExp: specularExp,
		Reflection:  reflection,
	}
}

// Validate checks the sphere invariants
func (s Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidSphere, s.Radius)
	}
	if s.SpecularExp < 0 {
		return fmt.Errorf("%w: specular exponent must not be negative, got %g", ErrInvalidSphere, s.SpecularExp)
	}
	if s.Reflection < 0 || s.Reflection > 1 {
		return fmt.Errorf("%w: reflection must be in [0,1], got %g", ErrInvalidSphere, s.Reflection)
	}
	return nil
}

// NormalAt returns the outward unit normal at a point on the sphere's surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
