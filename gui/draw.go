package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/lixenwraith/vi-radar/sweep"
	"github.com/lixenwraith/vi-radar/vmath"
)

var ringFractions = [...]float32{1.0, 2.0 / 3.0, 1.0 / 3.0}

// withAlpha scales a color to the given opacity
func withAlpha(c color.RGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*255 + 0.5)}
}

func drawRings(screen *ebiten.Image, f sweep.Frame) {
	c := float32(f.Radius)
	for _, frac := range ringFractions {
		vector.StrokeCircle(screen, c, c, c*frac, 1, colorRing, true)
	}
}

func drawAxes(screen *ebiten.Image, f sweep.Frame) {
	c := float32(f.Radius)
	vector.StrokeLine(screen, 0, c, 2*c, c, 1, colorAxis, true)
	vector.StrokeLine(screen, c, 0, c, 2*c, 1, colorAxis, true)
	vector.DrawFilledCircle(screen, c, c, 3, colorCenter, true)
}

// drawTrail draws indicators from the faintest up
func drawTrail(screen *ebiten.Image, f sweep.Frame) {
	for i := len(f.Indicators) - 1; i >= 0; i-- {
		ind := f.Indicators[i]
		if !ind.Active || ind.Opacity <= 0 {
			continue
		}
		x, y := vmath.PointOnBearing(f.Radius, f.Radius, f.Radius, float64(ind.Bearing))
		vector.StrokeLine(screen, float32(f.Radius), float32(f.Radius), float32(x), float32(y), 3,
			withAlpha(colorBeam, ind.Opacity), true)
	}
}

func drawPoints(screen *ebiten.Image, f sweep.Frame, face font.Face, labels bool) {
	for _, p := range f.Points {
		if p.Opacity <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 4, withAlpha(colorPoint, p.Opacity), true)
		if labels && p.Lit {
			text.Draw(screen, fmt.Sprintf("%03d", p.Bearing), face, int(p.X)+7, int(p.Y)+4,
				withAlpha(colorHUD, p.Opacity))
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, f sweep.Frame) {
	heading := 0
	if len(f.Indicators) > 0 {
		heading = f.Indicators[0].Bearing
	}
	line := fmt.Sprintf("SWEEP %03d  WINDOW %03d-%03d  TARGETS %d", heading, f.Window.Min, f.Window.Max, len(f.Points))

	clr := colorHUD
	if g.clock.IsPaused() {
		line += "  PAUSED"
		clr = colorPaused
	}
	if g.sim != nil && g.sim.Paused() {
		line += "  FEED HOLD"
	}
	text.Draw(screen, line, g.face, 4, g.height+hudHeight-6, clr)
}
