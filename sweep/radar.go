package sweep

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-radar/engine"
	"github.com/lixenwraith/vi-radar/vmath"
)

// Radar owns the sweep geometry, the plotted points and their highlight state
// Safe for concurrent use: points may be replaced from a feed while the tick task runs
type Radar struct {
	mu sync.RWMutex

	cfg    Config
	clock  engine.TimeProvider
	width  float64
	height float64
	radius float64
	epoch  time.Time // Indicator animations start here

	indicators []Indicator
	targets    []target
	window     Window

	onIlluminate []func(Point)

	taskMu sync.Mutex
	task   *Task
}

// New creates a radar for a container of the given size
// The radius is the mean of half-width and half-height, fixed for the radar's lifetime
func New(width, height float64, cfg Config, clock engine.TimeProvider) *Radar {
	cfg = cfg.withDefaults()
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Radar{
		cfg:        cfg,
		clock:      clock,
		width:      width,
		height:     height,
		radius:     (width + height) / 4,
		epoch:      clock.Now(),
		indicators: buildIndicators(cfg.Indicators, cfg.IndicatorSpacing),
	}
}

// Config returns the effective configuration
func (r *Radar) Config() Config {
	return r.cfg
}

// Radius is the center offset used for bearings and ring sizes
func (r *Radar) Radius() float64 {
	return r.radius
}

// Size returns the container dimensions captured at construction
func (r *Radar) Size() (float64, float64) {
	return r.width, r.height
}

// Indicators returns a copy of the trail indicators, leading first
func (r *Radar) Indicators() []Indicator {
	out := make([]Indicator, len(r.indicators))
	copy(out, r.indicators)
	return out
}

// OnIlluminate registers fn to run each time a point enters the sweep window
// Must be called before Start
func (r *Radar) OnIlluminate(fn func(Point)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onIlluminate = append(r.onIlluminate, fn)
}

// UpdatePoints discards every stored point and replaces them with coords
// Bearings are measured from (radius, radius)
func (r *Radar) UpdatePoints(coords []Coord) {
	targets := make([]target, len(coords))
	for i, c := range coords {
		targets[i] = target{Point: Point{
			X:       c.X,
			Y:       c.Y,
			Bearing: vmath.BearingFromOffset(c.X-r.radius, c.Y-r.radius),
		}}
	}

	r.mu.Lock()
	r.targets = targets
	r.mu.Unlock()
}

// Points returns a copy of the stored points in update order
func (r *Radar) Points() []Point {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Point, len(r.targets))
	for i := range r.targets {
		out[i] = r.targets[i].Point
	}
	return out
}

// elapsed is the animation time since construction
func (r *Radar) elapsed(now time.Time) time.Duration {
	e := now.Sub(r.epoch)
	if e < 0 {
		return 0
	}
	return e
}

// Window computes the sweep window at now from the trailing and leading indicators
func (r *Radar) Window(now time.Time) Window {
	e := r.elapsed(now)
	last := r.indicators[len(r.indicators)-1]
	first := r.indicators[0]
	return Window{
		Min: last.Bearing(e, r.cfg.Period),
		Max: first.Bearing(e, r.cfg.Period),
	}
}

// Tick runs one polling cycle at now
// Every point inside the window is flashed, the returned indices are points that just entered it
func (r *Radar) Tick(now time.Time) []int {
	win := r.Window(now)

	r.mu.Lock()
	r.window = win
	var entered []int
	var points []Point
	for i := range r.targets {
		t := &r.targets[i]
		matched := win.Contains(t.Bearing)
		if r.cfg.WrapAware {
			matched = win.ContainsWrapped(t.Bearing)
		}
		if matched {
			t.flashedAt = now
			t.lit = true
			if !t.inWindow {
				entered = append(entered, i)
				points = append(points, t.Point)
			}
		}
		t.inWindow = matched
	}
	hooks := r.onIlluminate
	r.mu.Unlock()

	for _, p := range points {
		for _, fn := range hooks {
			fn(p)
		}
	}
	return entered
}
