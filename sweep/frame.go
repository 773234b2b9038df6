package sweep

import "time"

// Frame is an immutable copy of everything a renderer draws
type Frame struct {
	Width, Height float64
	Radius        float64
	Indicators    []IndicatorState
	Points        []PointState
	Window        Window // As computed by the last tick
	Sweeping      bool
}

// IndicatorState is an indicator's bearing and opacity at snapshot time
type IndicatorState struct {
	Bearing int
	Opacity float64
	Active  bool // Start delay elapsed
}

// PointState is a point with its current highlight opacity
type PointState struct {
	Point
	Opacity float64
	Lit     bool
}

// Snapshot captures the radar at now
func (r *Radar) Snapshot(now time.Time) Frame {
	e := r.elapsed(now)

	inds := make([]IndicatorState, len(r.indicators))
	for i, ind := range r.indicators {
		_, active := ind.Rotation(e, r.cfg.Period)
		inds[i] = IndicatorState{
			Bearing: ind.Bearing(e, r.cfg.Period),
			Opacity: ind.Opacity,
			Active:  active,
		}
	}

	sweeping := r.Sweeping()

	r.mu.RLock()
	defer r.mu.RUnlock()

	pts := make([]PointState, len(r.targets))
	for i := range r.targets {
		t := &r.targets[i]
		pts[i] = PointState{
			Point:   t.Point,
			Opacity: t.opacity(now, r.cfg),
			Lit:     t.lit,
		}
	}

	return Frame{
		Width:      r.width,
		Height:     r.height,
		Radius:     r.radius,
		Indicators: inds,
		Points:     pts,
		Window:     r.window,
		Sweeping:   sweeping,
	}
}
