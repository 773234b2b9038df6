package feed

import (
	"context"
	"log"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-radar/core"
	"github.com/lixenwraith/vi-radar/sweep"
)

// Sink receives full point sets, *sweep.Radar satisfies it
type Sink interface {
	UpdatePoints([]sweep.Coord)
}

// SimConfig tunes the simulated target feed
type SimConfig struct {
	Targets  int
	Interval time.Duration
	Drift    float64 // Max movement per step, container units
	Seed     int64   // 0 seeds from the clock
}

// Simulator moves a handful of targets around the radar and pushes them to a sink
type Simulator struct {
	mu      sync.Mutex
	cfg     SimConfig
	sink    Sink
	rng     *rand.Rand
	cx, cy  float64
	maxR    float64
	targets []sweep.Coord

	paused   atomic.Bool
	produced atomic.Uint64
}

// NewSimulator places targets inside a radar of the given radius centered at (radius, radius)
func NewSimulator(radius float64, cfg SimConfig, sink Sink) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 3 * time.Second
	}
	s := &Simulator{
		cfg:  cfg,
		sink: sink,
		rng:  rand.New(rand.NewSource(seed)),
		cx:   radius,
		cy:   radius,
		maxR: radius * 0.95,
	}
	s.Reseed()
	return s
}

// Reseed scatters a fresh set of targets
func (s *Simulator) Reseed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.targets = make([]sweep.Coord, s.cfg.Targets)
	for i := range s.targets {
		// sqrt keeps the density uniform over the disc
		r := s.maxR * math.Sqrt(s.rng.Float64())
		a := s.rng.Float64() * 2 * math.Pi
		s.targets[i] = sweep.Coord{
			X: s.cx + r*math.Sin(a),
			Y: s.cy - r*math.Cos(a),
		}
	}
}

// Step drifts every target and returns the new set
func (s *Simulator) Step() []sweep.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.targets {
		t := &s.targets[i]
		t.X += (s.rng.Float64()*2 - 1) * s.cfg.Drift
		t.Y += (s.rng.Float64()*2 - 1) * s.cfg.Drift

		// Pull escaping targets back onto the rim
		dx, dy := t.X-s.cx, t.Y-s.cy
		if d := math.Hypot(dx, dy); d > s.maxR {
			t.X = s.cx + dx*s.maxR/d
			t.Y = s.cy + dy*s.maxR/d
		}
	}

	out := make([]sweep.Coord, len(s.targets))
	copy(out, s.targets)
	return out
}

// Emit pushes one step to the sink unless paused
func (s *Simulator) Emit() bool {
	if s.paused.Load() {
		return false
	}
	s.sink.UpdatePoints(s.Step())
	s.produced.Add(1)
	return true
}

// Toggle pauses or resumes emission and reports whether the feed is now paused
func (s *Simulator) Toggle() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether emission is paused
func (s *Simulator) Paused() bool {
	return s.paused.Load()
}

// Produced returns the number of point sets pushed to the sink
func (s *Simulator) Produced() uint64 {
	return s.produced.Load()
}

// Start emits immediately and then on every interval until ctx is cancelled
func (s *Simulator) Start(ctx context.Context) {
	core.Go(func() { s.run(ctx) })
	log.Printf("simulator started (targets=%d, interval=%v)", s.cfg.Targets, s.cfg.Interval)
}

func (s *Simulator) run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.Emit()
	for {
		select {
		case <-ctx.Done():
			log.Printf("simulator stopped (produced=%d)", s.Produced())
			return
		case <-ticker.C:
			s.Emit()
		}
	}
}
