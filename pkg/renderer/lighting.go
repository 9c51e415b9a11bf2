package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// ShadowEpsilon keeps shadow rays from hitting the surface they start on
const ShadowEpsilon = 0.0001

// ShadowMode selects what happens when a light is blocked
type ShadowMode int

const (
	// ShadowSkipLight drops only the blocked light and keeps evaluating the rest
	ShadowSkipLight ShadowMode = iota
	// ShadowAbortLights stops evaluating lights at the first blocked one,
	// keeping whatever was accumulated before it
	ShadowAbortLights
)

// String returns the config name of the mode
func (m ShadowMode) String() string {
	switch m {
	case ShadowSkipLight:
		return "skip"
	case ShadowAbortLights:
		return "abort"
	default:
		return fmt.Sprintf("ShadowMode(%d)", int(m))
	}
}

// ParseShadowMode parses "skip" or "abort"
func ParseShadowMode(s string) (ShadowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip", "":
		return ShadowSkipLight, nil
	case "abort":
		return ShadowAbortLights, nil
	}
	return 0, fmt.Errorf("unknown shadow mode %q (want skip or abort)", s)
}

// ComputeIllumination returns the light intensity reaching point, in [0, 1].
// normal is the surface normal, view points from the surface toward the viewer and
// specularExp of 0 disables the specular term.
func (rt *Raytracer) ComputeIllumination(point, normal, view core.Vec3, specularExp float64) float64 {
	total := 0.0

	for _, light := range rt.scene.Lights() {
		var toLight core.Vec3
		var tMax float64

		switch l := light.(type) {
		case scene.AmbientLight:
			total += l.Power
			continue
		case scene.PointLight:
			// t = 1 is the light itself; only blockers in between count
			toLight = l.Position.Subtract(point)
			tMax = 1.0
		case scene.DirectionalLight:
			toLight = l.Direction
			tMax = math.Inf(1)
		default:
			rt.logger.Printf("ERROR: unknown light type %T, leaving illumination at full intensity\n", light)
			return 1.0
		}

		rt.stats.ShadowRays++
		if blocker := rt.ClosestIntersection(point, toLight, ShadowEpsilon, tMax); blocker.Hit() {
			if rt.config.ShadowMode == ShadowAbortLights {
				break
			}
			continue
		}

		intensity := light.Intensity()

		// Diffuse
		normalDotLight := normal.Dot(toLight)
		if normalDotLight > 0 {
			total += intensity * normalDotLight / (normal.Length() * toLight.Length())
		}

		// Specular
		if specularExp > 0 {
			reflected := toLight.Reflect(normal)
			reflectedDotView := reflected.Dot(view)
			if reflectedDotView > 0 {
				cosine := reflectedDotView / (reflected.Length() * view.Length())
				total += intensity * math.Pow(cosine, specularExp)
			}
		}
	}

	return min(total, 1.0)
}
