package sweep

import (
	"time"

	"github.com/lixenwraith/vi-radar/vmath"
)

// Coord is a raw point in container-local coordinates
type Coord struct {
	X, Y float64
}

// Point is a plotted coordinate tagged with its bearing from the radar center
type Point struct {
	X, Y    float64
	Bearing int
}

// Window is the angular interval bounded by the trailing and leading indicators
type Window struct {
	Min, Max int
}

// Contains reports whether deg is strictly inside the window
// A window crossing 0° matches nothing
func (w Window) Contains(deg int) bool {
	return vmath.Between(deg, w.Min, w.Max)
}

// ContainsWrapped also matches windows that cross 0°
func (w Window) ContainsWrapped(deg int) bool {
	return vmath.BetweenWrapped(deg, w.Min, w.Max)
}

// Wraps reports whether the window crosses 0°
func (w Window) Wraps() bool {
	return w.Min > w.Max
}

// target is a stored point plus its highlight state
type target struct {
	Point
	flashedAt time.Time
	lit       bool // Flashed at least once
	inWindow  bool // Matched on the previous tick
}

// opacity of the target at now: 1 at the flash, linear fade to floor over fade
func (t *target) opacity(now time.Time, cfg Config) float64 {
	if !t.lit {
		return cfg.IdleOpacity
	}
	elapsed := now.Sub(t.flashedAt)
	if elapsed <= 0 {
		return 1
	}
	if elapsed >= cfg.FadeDuration {
		return cfg.FadeFloor
	}
	progress := float64(elapsed) / float64(cfg.FadeDuration)
	return 1 - (1-cfg.FadeFloor)*progress
}
