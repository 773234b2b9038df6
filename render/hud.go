package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-radar/sweep"
)

// HUDText builds the status line for a frame
func HUDText(f sweep.Frame, st Status) string {
	lit := 0
	for _, p := range f.Points {
		if p.Lit {
			lit++
		}
	}

	heading := 0
	if len(f.Indicators) > 0 {
		heading = f.Indicators[0].Bearing
	}

	parts := []string{
		fmt.Sprintf(" SWEEP %03d°", heading),
		fmt.Sprintf("WINDOW %03d–%03d", f.Window.Min, f.Window.Max),
		fmt.Sprintf("TARGETS %d", len(f.Points)),
		fmt.Sprintf("LIT %d", lit),
	}
	if f.Window.Min > f.Window.Max {
		parts = append(parts, "WRAP")
	}
	if st.Paused {
		parts = append(parts, "PAUSED")
	}
	if st.FeedPaused {
		parts = append(parts, "FEED HOLD")
	}
	if st.Muted {
		parts = append(parts, "MUTE")
	}
	return strings.Join(parts, " │ ")
}

// drawHUD fills the bottom row with the status line, clipped to the screen width
func (r *RadarRenderer) drawHUD(f sweep.Frame, st Status) {
	if r.height < 1 {
		return
	}
	bg := RgbHUDBg
	if st.Paused {
		bg = RgbHUDPaused
	}
	style := tcell.StyleDefault.Foreground(RgbHUDText).Background(bg)
	row := r.height - 1

	line := runewidth.Truncate(HUDText(f, st), r.width, "…")
	line = runewidth.FillRight(line, r.width)

	col := 0
	for _, ch := range line {
		r.screen.SetContent(col, row, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
