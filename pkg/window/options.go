package window

import (
	"github.com/df07/go-sphere-raytracer/pkg/display"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Options configures the preview window
type Options struct {
	Title     string
	Scale     int // Window pixels per canvas pixel
	Caption   string
	Raytracer *renderer.Raytracer
	Camera    *renderer.Camera
	// OnRendered is called once after the render pass completes
	OnRendered func(sink *display.ImageSink, stats renderer.RenderStats)
}

func (o Options) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}
