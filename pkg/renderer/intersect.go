package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// RayIntersection pairs the nearest sphere hit by a ray with the ray parameter t.
// T == +Inf means nothing was hit; Sphere is then the zero value.
type RayIntersection struct {
	Sphere scene.Sphere
	T      float64
}

// NoIntersection is returned when no sphere is hit
var NoIntersection = RayIntersection{T: math.Inf(1)}

// Hit reports whether the intersection found a sphere
func (ri RayIntersection) Hit() bool {
	return !math.IsInf(ri.T, 1)
}

// ClosestIntersection returns the nearest sphere hit along origin + t·direction with
// tMin < t < tMax. Spheres are tested in order and a later sphere must be strictly
// closer to win, so exact ties go to the earlier sphere.
func ClosestIntersection(spheres []scene.Sphere, origin, direction core.Vec3, tMin, tMax float64) RayIntersection {
	closest := NoIntersection

	// a only depends on the ray
	a := direction.Dot(direction)

	for _, sphere := range spheres {
		// Vector from sphere center to ray origin
		oc := origin.Subtract(sphere.Center)

		b := 2 * oc.Dot(direction)
		c := oc.Dot(oc) - sphere.Radius*sphere.Radius

		roots := core.SolveQuadratic(a, b, c)

		for _, t := range [2]float64{roots.T1, roots.T2} {
			if math.IsInf(t, 1) || t <= tMin || t >= tMax {
				continue
			}
			if t < closest.T {
				closest = RayIntersection{Sphere: sphere, T: t}
			}
		}
	}

	return closest
}

// ClosestIntersection finds the nearest sphere in the raytracer's scene
func (rt *Raytracer) ClosestIntersection(origin, direction core.Vec3, tMin, tMax float64) RayIntersection {
	return ClosestIntersection(rt.scene.Spheres(), origin, direction, tMin, tMax)
}
