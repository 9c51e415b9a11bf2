package display

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// DisplayerSink presents pixels on a TinyGo display driver.
// Pixels are buffered by the driver until Flush is called.
type DisplayerSink struct {
	d       drivers.Displayer
	dropped int
}

// NewDisplayerSink wraps a display driver
func NewDisplayerSink(d drivers.Displayer) *DisplayerSink {
	return &DisplayerSink{d: d}
}

// Present forwards a pixel to the driver, dropping pixels outside the panel
func (s *DisplayerSink) Present(x, y int, c color.RGBA) {
	w, h := s.d.Size()
	if x < 0 || y < 0 || x >= int(w) || y >= int(h) {
		s.dropped++
		return
	}
	s.d.SetPixel(int16(x), int16(y), c)
}

// Dropped returns how many pixels fell outside the panel
func (s *DisplayerSink) Dropped() int {
	return s.dropped
}

// Flush pushes buffered pixels to the panel
func (s *DisplayerSink) Flush() error {
	return s.d.Display()
}
