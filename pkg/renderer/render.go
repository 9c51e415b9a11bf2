package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sink receives rendered pixels. Present is called once per pixel and cannot fail.
type Sink interface {
	Present(x, y int, c color.RGBA)
}

// ImageProvider is implemented by sinks that keep the presented pixels
type ImageProvider interface {
	Image() image.Image
}

// ToRGBA converts a 0-255 color vector to 8-bit channels, clamping out-of-range
// components and truncating fractions
func ToRGBA(colorVec core.Vec3) color.RGBA {
	c := colorVec.Clamp(0, 255)
	return color.RGBA{
		R: uint8(c.X),
		G: uint8(c.Y),
		B: uint8(c.Z),
		A: 255,
	}
}

// RenderPass traces one ray per pixel and presents each pixel to the sink.
// Columns are visited left to right and each column top to bottom.
func (rt *Raytracer) RenderPass(camera *Camera, sink Sink) RenderStats {
	canvas := camera.Canvas()
	tMin, tMax := camera.PrimaryRange()

	rt.stats = RenderStats{}
	rt.logger.Printf("Rendering scene %q at %dx%d (max depth %d, shadow mode %s)\n",
		rt.scene.Name(), canvas.Width, canvas.Height, rt.config.MaxDepth, rt.config.ShadowMode)

	startTime := time.Now()
	for x := 0; x < canvas.Width; x++ {
		for y := 0; y < canvas.Height; y++ {
			ray := camera.GetRay(x, y)
			rt.stats.PrimaryRays++

			colorVec := rt.TraceRay(ray.Origin, ray.Direction, tMin, tMax, 0)
			sink.Present(x, y, ToRGBA(colorVec))
			rt.stats.TotalPixels++
		}
	}
	rt.stats.Duration = time.Since(startTime)

	if provider, ok := sink.(ImageProvider); ok {
		rt.stats.AverageLuminance, rt.stats.LuminanceStdDev = LuminanceStats(provider.Image())
	}

	rt.logger.Printf("Render completed in %v: %d pixels, %d rays (%d reflection, %d shadow)\n",
		rt.stats.Duration, rt.stats.TotalPixels, rt.stats.TotalRays(),
		rt.stats.ReflectionRays, rt.stats.ShadowRays)

	return rt.stats
}
