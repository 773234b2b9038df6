package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions for the radar scope
var (
	RgbBackground = tcell.NewRGBColor(10, 18, 12)    // Near-black phosphor
	RgbBeam       = tcell.NewRGBColor(0, 204, 0)     // Sweep trail
	RgbRing       = tcell.NewRGBColor(0, 110, 0)     // Range rings
	RgbAxis       = tcell.NewRGBColor(0, 80, 0)      // Axis guides
	RgbCenterDot  = tcell.NewRGBColor(120, 255, 120) // Radar origin
	RgbPoint      = tcell.NewRGBColor(50, 255, 50)   // Fully lit target
	RgbLabel      = tcell.NewRGBColor(140, 200, 140) // Bearing labels
	RgbHUDText    = tcell.NewRGBColor(0, 0, 0)       // Dark text on HUD bar
	RgbHUDBg      = tcell.NewRGBColor(0, 170, 0)     // HUD bar
	RgbHUDPaused  = tcell.NewRGBColor(255, 165, 0)   // HUD bar while paused
)

// TrailGradientSize is the number of precomputed beam shades
const TrailGradientSize = 10

// TrailGradient holds beam shades from full (index 0) to faintest, precomputed at init
var TrailGradient [TrailGradientSize]tcell.Color

func init() {
	for i := range TrailGradient {
		opacity := 1 - float64(i)/TrailGradientSize
		TrailGradient[i] = Blend(RgbBackground, RgbBeam, opacity)
	}
}

// toColorful converts a tcell color into go-colorful's 0..1 space
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Blend mixes fg over bg with the given opacity, clamped to [0, 1]
func Blend(bg, fg tcell.Color, opacity float64) tcell.Color {
	if opacity <= 0 {
		return bg
	}
	if opacity >= 1 {
		return fg
	}
	mixed := toColorful(bg).BlendRgb(toColorful(fg), opacity).Clamped()
	r, g, b := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// BeamColor returns the trail shade for an indicator opacity, snapped to the gradient
func BeamColor(opacity float64) tcell.Color {
	if opacity <= 0 {
		return RgbBackground
	}
	idx := int((1 - opacity) * TrailGradientSize)
	if idx < 0 {
		idx = 0
	}
	if idx >= TrailGradientSize {
		idx = TrailGradientSize - 1
	}
	return TrailGradient[idx]
}

// PointColor returns a target's color for its highlight opacity
func PointColor(opacity float64) tcell.Color {
	return Blend(RgbBackground, RgbPoint, opacity)
}
