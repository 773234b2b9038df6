package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-radar/engine"
	"github.com/lixenwraith/vi-radar/sweep"
	"github.com/lixenwraith/vi-radar/vmath"
)

var renderEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// litFrame builds a frame 4s into the sweep with a target at bearing 180 just illuminated
func litFrame(t *testing.T) (sweep.Frame, sweep.Point) {
	t.Helper()
	clock := engine.NewMockTimeProvider(renderEpoch)
	radar := sweep.New(400, 400, sweep.DefaultConfig(), clock)

	x, y := vmath.PointOnBearing(200, 200, 120, 180.5)
	radar.UpdatePoints([]sweep.Coord{{X: x, Y: y}})

	now := clock.Advance(4 * time.Second)
	if entered := radar.Tick(now); len(entered) != 1 {
		t.Fatalf("Expected target to be illuminated, got %v", entered)
	}
	return radar.Snapshot(now), radar.Points()[0]
}

func rowText(screen tcell.Screen, row, width int) string {
	var sb strings.Builder
	for col := 0; col < width; col++ {
		ch, _, _, _ := screen.GetContent(col, row)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestRenderFrameDrawsScope(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	frame, target := litFrame(t)

	r := NewRadarRenderer(screen)
	r.RenderFrame(frame, Status{})
	view := r.Viewport()

	// Center hub
	cx, cy := view.Cell(200, 200)
	if ch, _, _, _ := screen.GetContent(cx, cy); ch != runeCenter {
		t.Errorf("Expected center hub at (%d, %d), got %q", cx, cy, ch)
	}

	// Lit target at full brightness
	px, py := view.Cell(target.X, target.Y)
	ch, _, style, _ := screen.GetContent(px, py)
	if ch != runePoint {
		t.Errorf("Expected target at (%d, %d), got %q", px, py, ch)
	}
	if fg, _, _ := style.Decompose(); fg != RgbPoint {
		t.Errorf("Expected fully lit target color, got %v", fg)
	}

	counts := map[rune]int{}
	for row := 0; row < 23; row++ {
		for col := 0; col < 80; col++ {
			ch, _, _, _ := screen.GetContent(col, row)
			counts[ch]++
		}
	}
	if counts[runeBeam] == 0 {
		t.Error("Expected sweep trail cells")
	}
	if counts[runeRing] == 0 {
		t.Error("Expected range ring cells")
	}
	if counts[runeAxisX] == 0 || counts[runeAxisY] == 0 {
		t.Errorf("Expected both axes, got x=%d y=%d", counts[runeAxisX], counts[runeAxisY])
	}

	hud := rowText(screen, 23, 80)
	if !strings.HasPrefix(hud, " SWEEP 186°") {
		t.Errorf("Unexpected HUD %q", hud)
	}
}

func TestRenderFrameHidesDarkTargets(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	radar := sweep.New(400, 400, sweep.DefaultConfig(), engine.NewMockTimeProvider(renderEpoch))
	radar.UpdatePoints([]sweep.Coord{{X: 100, Y: 100}})

	r := NewRadarRenderer(screen)
	r.RenderFrame(radar.Snapshot(renderEpoch), Status{})

	col, row := r.Viewport().Cell(100, 100)
	if ch, _, _, _ := screen.GetContent(col, row); ch == runePoint {
		t.Error("Expected a target the beam has not reached to stay hidden")
	}
}

func TestRenderFrameLabels(t *testing.T) {
	screen := newSimScreen(t, 200, 101)
	frame, target := litFrame(t)

	r := NewRadarRenderer(screen)
	r.RenderFrame(frame, Status{Labels: true})

	col, row := r.Viewport().Cell(target.X, target.Y)
	label := string([]rune(rowText(screen, row, 200))[col+2 : col+5])
	if label != "180" {
		t.Errorf("Expected bearing label 180, got %q", label)
	}
}

func TestHUDText(t *testing.T) {
	frame, _ := litFrame(t)

	text := HUDText(frame, Status{Paused: true, Muted: true})
	for _, want := range []string{"SWEEP 186°", "WINDOW 164–186", "TARGETS 1", "LIT 1", "PAUSED", "MUTE"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, text)
		}
	}
	if strings.Contains(text, "WRAP") || strings.Contains(text, "FEED HOLD") {
		t.Errorf("Unexpected flags in %q", text)
	}

	frame.Window = sweep.Window{Min: 350, Max: 12}
	if !strings.Contains(HUDText(frame, Status{FeedPaused: true}), "WRAP") {
		t.Error("Expected WRAP flag for a window crossing 0")
	}
}

func TestHUDTruncates(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	frame, _ := litFrame(t)

	r := NewRadarRenderer(screen)
	r.RenderFrame(frame, Status{})

	if ch, _, _, _ := screen.GetContent(19, 4); ch != '…' {
		t.Errorf("Expected truncated HUD to end with an ellipsis, got %q", rowText(screen, 4, 20))
	}
}

func TestResize(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewRadarRenderer(screen)

	screen.SetSize(120, 40)
	r.Resize()
	frame, _ := litFrame(t)
	r.RenderFrame(frame, Status{})

	if v := r.Viewport(); v.Rows != 39 {
		t.Errorf("Expected viewport to use the new height, got %+v", v)
	}
}
