//go:build !tinygo && cgo

package window

import (
	"image/color"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/display"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

func testOptions(width, height int) Options {
	config := renderer.DefaultCameraConfig()
	config.Width = width
	config.Height = height
	rt := renderer.NewRaytracer(scene.NewDefaultScene(), renderer.DefaultTraceConfig())
	rt.SetLogger(discardLogger{})
	return Options{
		Title:     "test",
		Raytracer: rt,
		Camera:    renderer.NewCamera(config),
	}
}

func TestGame_RendersOnce(t *testing.T) {
	opts := testOptions(16, 12)
	calls := 0
	opts.OnRendered = func(sink *display.ImageSink, stats renderer.RenderStats) {
		calls++
		if stats.TotalPixels != 16*12 {
			t.Errorf("Expected %d pixels, got %d", 16*12, stats.TotalPixels)
		}
	}
	g := newGame(opts)

	g.renderOnce()
	g.renderOnce()

	if calls != 1 {
		t.Errorf("Expected a single render pass, got %d", calls)
	}
	if !g.dirty {
		t.Error("Expected the window image to be marked for upload")
	}
	// Top-left looks at the sky
	if got := g.sink.RGBA().RGBAAt(0, 0); got != (color.RGBA{45, 0, 65, 255}) {
		t.Errorf("Expected background at (0, 0), got %v", got)
	}
}

func TestGame_Layout(t *testing.T) {
	g := newGame(testOptions(40, 30))
	w, h := g.Layout(1920, 1080)
	if w != 40 || h != 30 {
		t.Errorf("Expected logical size 40x30, got %dx%d", w, h)
	}
}

func TestOptions_Scale(t *testing.T) {
	tests := []struct {
		scale    int
		expected int
	}{
		{0, 1},
		{-2, 1},
		{1, 1},
		{2, 2},
	}
	for _, tt := range tests {
		if got := (Options{Scale: tt.scale}).scale(); got != tt.expected {
			t.Errorf("scale(%d) = %d, expected %d", tt.scale, got, tt.expected)
		}
	}
}
