package renderer

import (
	"image"
	"time"

	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about a render pass
type RenderStats struct {
	TotalPixels      int           // Pixels presented to the sink
	PrimaryRays      int           // One per pixel
	ReflectionRays   int           // Recursive mirror rays
	ShadowRays       int           // Occlusion tests toward point and directional lights
	BackgroundPixels int           // Primary rays that hit nothing
	Duration         time.Duration // Wall time of the pass
	AverageLuminance float64       // Mean Rec. 709 luminance of the output, [0,1]
	LuminanceStdDev  float64       // Spread of the luminance across pixels
}

// TotalRays returns the number of rays of all kinds traced during the pass
func (s RenderStats) TotalRays() int {
	return s.PrimaryRays + s.ReflectionRays + s.ShadowRays
}

// pixelLuminances returns the Rec. 709 luminance of every pixel, scaled to [0,1]
func pixelLuminances(img image.Image) []float64 {
	bounds := img.Bounds()
	lums := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lums = append(lums, (0.2126*float64(r)+0.7152*float64(g)+0.0722*float64(b))/0xffff)
		}
	}
	return lums
}

// CalculateAverageLuminance returns the mean luminance of an image in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	lums := pixelLuminances(img)
	if len(lums) == 0 {
		return 0
	}
	return stat.Mean(lums, nil)
}

// LuminanceStats returns the mean and standard deviation of an image's luminance
func LuminanceStats(img image.Image) (mean, stdDev float64) {
	lums := pixelLuminances(img)
	switch len(lums) {
	case 0:
		return 0, 0
	case 1:
		return lums[0], 0
	}
	return stat.MeanStdDev(lums, nil)
}
