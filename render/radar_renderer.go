package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-radar/sweep"
	"github.com/lixenwraith/vi-radar/vmath"
)

// Ring radii as a fraction of the radar radius: big, medium, small
var RingFractions = [...]float64{1.0, 2.0 / 3.0, 1.0 / 3.0}

const (
	runeRing   = '·'
	runeAxisX  = '─'
	runeAxisY  = '│'
	runeCenter = '┼'
	runeBeam   = '█'
	runePoint  = '●'
)

// Status carries frontend state shown in the HUD
type Status struct {
	Paused     bool
	FeedPaused bool
	Muted      bool
	Labels     bool
}

// RadarRenderer draws sweep frames on a tcell screen
type RadarRenderer struct {
	screen tcell.Screen
	width  int
	height int
	view   Viewport
	bg     tcell.Style
}

// NewRadarRenderer creates a renderer for screen; the bottom row is kept for the HUD
func NewRadarRenderer(screen tcell.Screen) *RadarRenderer {
	r := &RadarRenderer{
		screen: screen,
		bg:     tcell.StyleDefault.Background(RgbBackground),
	}
	r.width, r.height = screen.Size()
	return r
}

// Resize picks up new screen dimensions, the radar geometry itself never changes
func (r *RadarRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// Viewport returns the mapping used by the last frame
func (r *RadarRenderer) Viewport() Viewport {
	return r.view
}

// RenderFrame draws the whole scope and shows it
func (r *RadarRenderer) RenderFrame(f sweep.Frame, st Status) {
	r.screen.SetStyle(r.bg)
	r.screen.Clear()

	r.view = Fit(f.Width, f.Height, r.width, r.height-1)

	r.drawRings(f)
	r.drawAxes(f)
	r.drawTrail(f)
	r.drawCenter(f)
	r.drawPoints(f, st.Labels)
	r.drawHUD(f, st)

	r.screen.Show()
}

// drawRings draws the range circles
func (r *RadarRenderer) drawRings(f sweep.Frame) {
	style := r.bg.Foreground(RgbRing)
	for _, frac := range RingFractions {
		radius := f.Radius * frac
		// One sample per cell of circumference keeps rings closed without overdraw
		steps := int(2*math.Pi*radius*r.view.ScaleX) + 8
		for i := 0; i < steps; i++ {
			x, y := vmath.PointOnBearing(f.Radius, f.Radius, radius, float64(i)*360/float64(steps))
			r.set(x, y, runeRing, style)
		}
	}
}

// drawCenter marks the radar origin on top of the trail
func (r *RadarRenderer) drawCenter(f sweep.Frame) {
	r.set(f.Radius, f.Radius, runeCenter, r.bg.Foreground(RgbCenterDot))
}

// drawAxes draws the horizontal and vertical guides through the center
func (r *RadarRenderer) drawAxes(f sweep.Frame) {
	style := r.bg.Foreground(RgbAxis)
	cx, cy := r.view.Cell(f.Radius, f.Radius)
	left, top := r.view.Cell(0, 0)
	right, bottom := r.view.Cell(2*f.Radius, 2*f.Radius)

	for col := left; col < right; col++ {
		if col != cx {
			r.setCell(col, cy, runeAxisX, style)
		}
	}
	for row := top; row < bottom; row++ {
		if row != cy {
			r.setCell(cx, row, runeAxisY, style)
		}
	}
}

// drawTrail draws indicators from the faintest up so brighter segments land on top
func (r *RadarRenderer) drawTrail(f sweep.Frame) {
	for i := len(f.Indicators) - 1; i >= 0; i-- {
		ind := f.Indicators[i]
		if !ind.Active || ind.Opacity <= 0 {
			continue
		}
		style := r.bg.Foreground(BeamColor(ind.Opacity))
		r.drawSpoke(f, float64(ind.Bearing), style)
	}
}

// drawSpoke draws a line from the center to the rim along bearing
func (r *RadarRenderer) drawSpoke(f sweep.Frame, bearing float64, style tcell.Style) {
	steps := int(f.Radius*math.Max(r.view.ScaleX, r.view.ScaleY)) + 1
	for i := 1; i <= steps; i++ {
		dist := f.Radius * float64(i) / float64(steps)
		x, y := vmath.PointOnBearing(f.Radius, f.Radius, dist, bearing)
		r.set(x, y, runeBeam, style)
	}
}

// drawPoints draws every visible target, optionally with its bearing
func (r *RadarRenderer) drawPoints(f sweep.Frame, labels bool) {
	for _, p := range f.Points {
		if p.Opacity <= 0 {
			continue
		}
		r.set(p.X, p.Y, runePoint, r.bg.Foreground(PointColor(p.Opacity)))
		if labels && p.Lit {
			col, row := r.view.Cell(p.X, p.Y)
			r.text(col+2, row, fmt.Sprintf("%03d", p.Bearing), r.bg.Foreground(RgbLabel))
		}
	}
}

// set draws at a container coordinate
func (r *RadarRenderer) set(x, y float64, ch rune, style tcell.Style) {
	col, row := r.view.Cell(x, y)
	r.setCell(col, row, ch, style)
}

// setCell draws at a screen cell, clipped to the radar area above the HUD
func (r *RadarRenderer) setCell(col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= r.width || row < 0 || row >= r.height-1 {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *RadarRenderer) text(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.setCell(col, row, ch, style)
		col++
	}
}
