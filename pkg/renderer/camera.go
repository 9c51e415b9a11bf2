package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

const (
	// DefaultCanvasSize is the width and height of the window in pixels
	DefaultCanvasSize = 700
	// DefaultViewportSize is the width and height of the viewport in world units
	DefaultViewportSize = 1.0
	// ViewportDistance is the distance from the camera to the viewport plane
	ViewportDistance = 1.0
)

// Canvas maps window pixels (origin top-left, y down) to canvas coordinates
// (origin center, y up)
type Canvas struct {
	Width, Height int
}

// WindowToCanvas converts a window pixel to centered canvas coordinates
func (c Canvas) WindowToCanvas(x, y int) (cx, cy int) {
	return x - c.Width/2, -y + c.Height/2
}

// CanvasToWindow is the inverse of WindowToCanvas
func (c Canvas) CanvasToWindow(cx, cy int) (x, y int) {
	return cx + c.Width/2, -(cy - c.Height/2)
}

// CanvasToViewport maps canvas coordinates onto the viewport plane at ViewportDistance
func (c Canvas) CanvasToViewport(cx, cy int, viewportWidth, viewportHeight float64) core.Vec3 {
	return core.NewVec3(
		float64(cx)*viewportWidth/float64(c.Width),
		float64(cy)*viewportHeight/float64(c.Height),
		ViewportDistance,
	)
}

// CameraConfig contains camera configuration
type CameraConfig struct {
	Position       core.Vec3 // Camera position; the camera looks down +Z
	Width          int       // Canvas width in pixels
	Height         int       // Canvas height in pixels
	ViewportWidth  float64   // Viewport width in world units
	ViewportHeight float64   // Viewport height in world units
}

// DefaultCameraConfig returns the 700x700 camera at the origin with a 1x1 viewport
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:       core.NewVec3(0, 0, 0),
		Width:          DefaultCanvasSize,
		Height:         DefaultCanvasSize,
		ViewportWidth:  DefaultViewportSize,
		ViewportHeight: DefaultViewportSize,
	}
}

// Camera generates primary rays for window pixels
type Camera struct {
	config CameraConfig
	canvas Canvas
}

// NewCamera creates a camera
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		config: config,
		canvas: Canvas{Width: config.Width, Height: config.Height},
	}
}

// Canvas returns the camera's canvas
func (c *Camera) Canvas() Canvas {
	return c.canvas
}

// GetRay returns the primary ray through window pixel (x, y).
// The direction is not normalized; t = 1 lies on the viewport.
func (c *Camera) GetRay(x, y int) core.Ray {
	cx, cy := c.canvas.WindowToCanvas(x, y)
	direction := c.canvas.CanvasToViewport(cx, cy, c.config.ViewportWidth, c.config.ViewportHeight)
	return core.NewRay(c.config.Position, direction)
}

// PrimaryRange returns the t range traced for primary rays: beyond the viewport, unbounded
func (c *Camera) PrimaryRange() (tMin, tMax float64) {
	return ViewportDistance, math.Inf(1)
}
