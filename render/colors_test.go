package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestTrailGradientFades verifies shades run from the full beam color down toward the background
func TestTrailGradientFades(t *testing.T) {
	if TrailGradient[0] != RgbBeam {
		r, g, b := TrailGradient[0].RGB()
		t.Errorf("Expected first shade to be the beam color, got RGB(%d,%d,%d)", r, g, b)
	}

	for i := 0; i < TrailGradientSize-1; i++ {
		_, g1, _ := TrailGradient[i].RGB()
		_, g2, _ := TrailGradient[i+1].RGB()
		if g1 <= g2 {
			t.Errorf("Shade %d should be brighter than %d: G %d vs %d", i, i+1, g1, g2)
		}
	}

	_, gLast, _ := TrailGradient[TrailGradientSize-1].RGB()
	_, gBg, _ := RgbBackground.RGB()
	if gLast <= gBg {
		t.Errorf("Faintest shade should stay above the background, got G %d vs %d", gLast, gBg)
	}
}

func TestBlendEndpoints(t *testing.T) {
	if got := Blend(RgbBackground, RgbPoint, 0); got != RgbBackground {
		t.Error("Expected zero opacity to return the background")
	}
	if got := Blend(RgbBackground, RgbPoint, 1); got != RgbPoint {
		t.Error("Expected full opacity to return the foreground")
	}
	if got := Blend(RgbBackground, RgbPoint, -3); got != RgbBackground {
		t.Error("Expected negative opacity to clamp to background")
	}

	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)
	r, g, b := Blend(black, white, 0.5).RGB()
	for _, c := range []int32{r, g, b} {
		if c < 126 || c > 129 {
			t.Errorf("Expected mid gray, got RGB(%d,%d,%d)", r, g, b)
			break
		}
	}
}

func TestBeamColor(t *testing.T) {
	tests := []struct {
		name    string
		opacity float64
		want    tcell.Color
	}{
		{"Transparent", 0, RgbBackground},
		{"Negative", -1, RgbBackground},
		{"Full", 1, TrailGradient[0]},
		{"Over", 2, TrailGradient[0]},
		{"Half", 0.5, TrailGradient[5]},
		{"Faintest", 0.1, TrailGradient[9]},
		{"BelowFaintest", 0.01, TrailGradient[9]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BeamColor(tt.opacity); got != tt.want {
				t.Errorf("BeamColor(%v) = %v, want %v", tt.opacity, got, tt.want)
			}
		})
	}
}

func TestPointColorBrightens(t *testing.T) {
	_, gDim, _ := PointColor(0.4).RGB()
	_, gFull, _ := PointColor(1).RGB()
	if gDim >= gFull {
		t.Errorf("Expected lit point brighter than faded point: %d vs %d", gFull, gDim)
	}
}
