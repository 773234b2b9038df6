package sweep

import (
	"time"

	"github.com/lixenwraith/vi-radar/vmath"
)

// Indicator is one segment of the beam trail
// Index 0 leads the sweep, the last index trails it
type Indicator struct {
	Index   int
	Opacity float64
	Delay   time.Duration
}

// buildIndicators spreads count indicators over the trail
// The leading indicator is transparent, the rest fade linearly: 0.9, 0.8, ... for ten
func buildIndicators(count int, spacing time.Duration) []Indicator {
	inds := make([]Indicator, count)
	for i := range inds {
		opacity := 0.0
		if i > 0 {
			opacity = 1 - float64(i)/float64(count)
		}
		inds[i] = Indicator{
			Index:   i,
			Opacity: opacity,
			Delay:   time.Duration(i) * spacing,
		}
	}
	return inds
}

// Rotation returns the indicator's rotation in degrees after elapsed animation time
// ok is false while the start delay has not passed and the indicator has no transform yet
func (ind Indicator) Rotation(elapsed, period time.Duration) (deg float64, ok bool) {
	active := elapsed - ind.Delay
	if active < 0 || period <= 0 {
		return 0, false
	}
	phase := active % period
	return float64(phase) / float64(period) * vmath.FullTurn, true
}

// Transform is the matrix a renderer would report for the indicator at elapsed time
func (ind Indicator) Transform(elapsed, period time.Duration) vmath.Transform {
	deg, ok := ind.Rotation(elapsed, period)
	if !ok {
		return vmath.NoTransform
	}
	return vmath.Rotation(deg)
}

// Bearing is the compass bearing the indicator points at after elapsed animation time
func (ind Indicator) Bearing(elapsed, period time.Duration) int {
	return vmath.BearingFromTransform(ind.Transform(elapsed, period))
}
