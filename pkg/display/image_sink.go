package display

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// ImageSink collects presented pixels in an in-memory RGBA image.
// It also satisfies drivers.Displayer so captions can be drawn on top of a finished render.
type ImageSink struct {
	img *image.RGBA
}

// NewImageSink creates a sink for a width x height canvas
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Present stores one pixel. Pixels outside the image are dropped.
func (s *ImageSink) Present(x, y int, c color.RGBA) {
	s.img.SetRGBA(x, y, c)
}

// Image returns the rendered image
func (s *ImageSink) Image() image.Image {
	return s.img
}

// RGBA returns the backing image
func (s *ImageSink) RGBA() *image.RGBA {
	return s.img
}

// Bounds returns the image bounds
func (s *ImageSink) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Size reports the image dimensions in the drivers.Displayer convention
func (s *ImageSink) Size() (x, y int16) {
	b := s.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel draws a pixel; used by tinyfont when writing captions
func (s *ImageSink) SetPixel(x, y int16, c color.RGBA) {
	s.img.SetRGBA(int(x), int(y), c)
}

// Display is a no-op: the image is always current
func (s *ImageSink) Display() error {
	return nil
}

// SavePNG writes the image to path
func (s *ImageSink) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, s.img); err != nil {
		return err
	}
	return file.Close()
}
