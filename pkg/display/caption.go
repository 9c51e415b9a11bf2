package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	captionPadding = 3
	// captionLineHeight is the height of a proggy TinySZ8pt7b line
	captionLineHeight = 10
	captionBaseline   = 8
)

// Caption colors
var (
	CaptionForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	CaptionBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// DrawCaption writes a single line of text in the bottom-left corner of d on a solid band.
// Text wider than the display is clipped by the display.
func DrawCaption(d drivers.Displayer, text string) {
	if text == "" {
		return
	}
	font := &proggy.TinySZ8pt7b
	w, h := d.Size()
	_, textWidth := tinyfont.LineWidth(font, text)

	bandHeight := int16(captionLineHeight + 2*captionPadding)
	bandWidth := int16(textWidth) + 2*captionPadding
	if bandWidth > w {
		bandWidth = w
	}
	top := h - bandHeight
	if top < 0 {
		top = 0
	}

	for y := top; y < h; y++ {
		for x := int16(0); x < bandWidth; x++ {
			d.SetPixel(x, y, CaptionBackground)
		}
	}

	tinyfont.WriteLine(d, font, captionPadding, top+captionPadding+captionBaseline, text, CaptionForeground)
}
