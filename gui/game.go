package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/vi-radar/engine"
	"github.com/lixenwraith/vi-radar/feed"
	"github.com/lixenwraith/vi-radar/sweep"
)

// hudHeight is the strip below the scope reserved for the status line
const hudHeight = 20

var (
	colorBackground = color.RGBA{10, 18, 12, 255}
	colorRing       = color.RGBA{0, 110, 0, 255}
	colorAxis       = color.RGBA{0, 80, 0, 255}
	colorCenter     = color.RGBA{120, 255, 120, 255}
	colorBeam       = color.RGBA{0, 204, 0, 255}
	colorPoint      = color.RGBA{50, 255, 50, 255}
	colorHUD        = color.RGBA{140, 200, 140, 255}
	colorPaused     = color.RGBA{255, 165, 0, 255}
)

// Game adapts a sweep.Radar to ebiten's update/draw loop
type Game struct {
	radar  *sweep.Radar
	clock  *engine.PausableClock
	sim    *feed.Simulator // nil when points come from a file
	face   font.Face
	labels bool
	width  int
	height int
}

// NewGame creates the window game; sim may be nil
func NewGame(radar *sweep.Radar, clock *engine.PausableClock, sim *feed.Simulator, labels bool) *Game {
	w, h := radar.Size()
	return &Game{
		radar:  radar,
		clock:  clock,
		sim:    sim,
		face:   basicfont.Face7x13,
		labels: labels,
		width:  int(w),
		height: int(h),
	}
}

// Update handles keys: P pauses the sweep, Space holds the feed, R reseeds, Q or Esc quits
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.clock.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.sim != nil {
			g.sim.Toggle()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if g.sim != nil {
			g.sim.Reseed()
			g.sim.Emit()
		}
	}
	return nil
}

// Draw renders the current snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	f := g.radar.Snapshot(g.clock.Now())

	drawRings(screen, f)
	drawAxes(screen, f)
	drawTrail(screen, f)
	drawPoints(screen, f, g.face, g.labels)
	g.drawHUD(screen, f)
}

// Layout keeps the logical screen at the container size plus the HUD strip
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height + hudHeight
}

// Run opens the window and blocks until it closes
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.width, g.height+hudHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
