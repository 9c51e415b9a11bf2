package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestCanvas_WindowToCanvas(t *testing.T) {
	canvas := Canvas{Width: 700, Height: 700}

	tests := []struct {
		name       string
		x, y       int
		expectedCx int
		expectedCy int
	}{
		{"top left corner", 0, 0, -350, 350},
		{"center", 350, 350, 0, 0},
		{"bottom right corner", 699, 699, 349, -349},
		{"right of center", 400, 350, 50, 0},
		{"below center", 350, 500, 0, -150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := canvas.WindowToCanvas(tt.x, tt.y)
			if cx != tt.expectedCx || cy != tt.expectedCy {
				t.Errorf("WindowToCanvas(%d, %d) = (%d, %d), expected (%d, %d)",
					tt.x, tt.y, cx, cy, tt.expectedCx, tt.expectedCy)
			}
		})
	}
}

func TestCanvas_OddSizeUsesIntegerHalf(t *testing.T) {
	canvas := Canvas{Width: 5, Height: 3}

	cx, cy := canvas.WindowToCanvas(0, 0)
	if cx != -2 || cy != 1 {
		t.Errorf("Expected (-2, 1), got (%d, %d)", cx, cy)
	}
	cx, cy = canvas.WindowToCanvas(4, 2)
	if cx != 2 || cy != -1 {
		t.Errorf("Expected (2, -1), got (%d, %d)", cx, cy)
	}
}

func TestCanvas_RoundTrip(t *testing.T) {
	for _, canvas := range []Canvas{{700, 700}, {640, 480}, {5, 3}} {
		for x := 0; x < canvas.Width; x += 7 {
			for y := 0; y < canvas.Height; y += 5 {
				cx, cy := canvas.WindowToCanvas(x, y)
				wx, wy := canvas.CanvasToWindow(cx, cy)
				if wx != x || wy != y {
					t.Fatalf("%dx%d: (%d, %d) -> (%d, %d) -> (%d, %d)",
						canvas.Width, canvas.Height, x, y, cx, cy, wx, wy)
				}
			}
		}
	}
}

func TestCanvas_CanvasToViewport(t *testing.T) {
	canvas := Canvas{Width: 700, Height: 700}

	tests := []struct {
		name     string
		cx, cy   int
		vpW, vpH float64
		expected core.Vec3
	}{
		{"center", 0, 0, 1, 1, core.NewVec3(0, 0, 1)},
		{"right edge bottom edge", 350, -350, 1, 1, core.NewVec3(0.5, -0.5, 1)},
		{"top left", -350, 350, 1, 1, core.NewVec3(-0.5, 0.5, 1)},
		{"wide viewport", 350, 175, 2, 1, core.NewVec3(1, 0.25, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canvas.CanvasToViewport(tt.cx, tt.cy, tt.vpW, tt.vpH)
			if !got.ApproxEqual(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	center := camera.GetRay(350, 350)
	if center.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected rays from the origin, got %v", center.Origin)
	}
	if !center.Direction.ApproxEqual(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected center ray (0, 0, 1), got %v", center.Direction)
	}

	corner := camera.GetRay(0, 0)
	if !corner.Direction.ApproxEqual(core.NewVec3(-0.5, 0.5, 1), 1e-12) {
		t.Errorf("Expected top-left ray (-0.5, 0.5, 1), got %v", corner.Direction)
	}

	// Every primary ray reaches the viewport plane at t = 1
	for _, px := range [][2]int{{0, 0}, {123, 456}, {699, 0}, {0, 699}} {
		ray := camera.GetRay(px[0], px[1])
		if ray.At(1).Z != ViewportDistance {
			t.Errorf("pixel %v: expected z=%f at t=1, got %f", px, ViewportDistance, ray.At(1).Z)
		}
	}
}

func TestCamera_OffsetPosition(t *testing.T) {
	config := DefaultCameraConfig()
	config.Position = core.NewVec3(1, 2, -3)
	camera := NewCamera(config)

	ray := camera.GetRay(350, 350)
	if ray.Origin != config.Position {
		t.Errorf("Expected origin %v, got %v", config.Position, ray.Origin)
	}
	if !ray.Direction.ApproxEqual(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Direction should not depend on position, got %v", ray.Direction)
	}
}

func TestCamera_PrimaryRange(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	tMin, tMax := camera.PrimaryRange()
	if tMin != 1 {
		t.Errorf("Expected tMin 1, got %f", tMin)
	}
	if !math.IsInf(tMax, 1) {
		t.Errorf("Expected unbounded tMax, got %f", tMax)
	}
}
