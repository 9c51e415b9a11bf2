package renderer

import (
	"github.com/rs/zerolog/log"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

const (
	// DefaultMaxDepth is the number of reflection bounces traced after the primary hit
	DefaultMaxDepth = 2
	// ReflectionEpsilon is the minimum t of a reflected ray, keeping it off its own surface
	ReflectionEpsilon = 0.01
)

// DefaultBackgroundColor is returned for rays that escape the scene
var DefaultBackgroundColor = core.NewVec3(45, 0, 65)

// TraceConfig contains ray tracing configuration
type TraceConfig struct {
	MaxDepth        int        // Reflection recursion limit
	ShadowMode      ShadowMode // Behavior when a light is blocked
	BackgroundColor core.Vec3  // Color of rays that hit nothing
}

// DefaultTraceConfig returns the reference configuration
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxDepth:        DefaultMaxDepth,
		ShadowMode:      ShadowSkipLight,
		BackgroundColor: DefaultBackgroundColor,
	}
}

// Raytracer traces rays through a fixed scene of spheres
type Raytracer struct {
	scene  *scene.Scene
	config TraceConfig
	logger core.Logger
	stats  RenderStats
}

// NewRaytracer creates a new raytracer for the scene
func NewRaytracer(s *scene.Scene, config TraceConfig) *Raytracer {
	return &Raytracer{
		scene:  s,
		config: config,
		logger: &log.Logger,
	}
}

// SetLogger replaces the logger used for render progress and errors
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Config returns the trace configuration
func (rt *Raytracer) Config() TraceConfig {
	return rt.config
}

// Scene returns the scene being traced
func (rt *Raytracer) Scene() *scene.Scene {
	return rt.scene
}

// TraceRay returns the color seen along origin + t·direction for tMin < t < tMax.
// depth counts reflection bounces so far; at MaxDepth the surface's local color is
// returned without tracing further.
func (rt *Raytracer) TraceRay(origin, direction core.Vec3, tMin, tMax float64, depth int) core.Vec3 {
	closest := rt.ClosestIntersection(origin, direction, tMin, tMax)
	if !closest.Hit() {
		if depth == 0 {
			rt.stats.BackgroundPixels++
		}
		return rt.config.BackgroundColor
	}

	sphere := closest.Sphere
	point := origin.Add(direction.Multiply(closest.T))
	normal := sphere.NormalAt(point)
	view := direction.Negate()

	localColor := sphere.Color.Multiply(rt.ComputeIllumination(point, normal, view, sphere.SpecularExp))

	if sphere.Reflection <= 0 || depth >= rt.config.MaxDepth {
		return localColor
	}

	rt.stats.ReflectionRays++
	reflectedColor := rt.TraceRay(point, view.Reflect(normal), ReflectionEpsilon, tMax, depth+1)

	return localColor.Multiply(1 - sphere.Reflection).Add(reflectedColor.Multiply(sphere.Reflection))
}
