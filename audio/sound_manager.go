package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-radar/engine"
)

const (
	sampleRate   = beep.SampleRate(48000)
	pingDuration = 180 * time.Millisecond
)

// Config controls the sonar pings
type Config struct {
	Enabled  bool
	PitchHz  float64
	Volume   float64       // Linear gain, 0 mutes
	Cooldown time.Duration // Minimum gap between pings
}

// DefaultConfig is a 1.2kHz ping at most every 60ms
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		PitchHz:  1200,
		Volume:   0.6,
		Cooldown: 60 * time.Millisecond,
	}
}

// SoundManager plays a ping whenever the sweep illuminates a point
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	clock       engine.TimeProvider
	mixer       *beep.Mixer
	initialized bool
	lastPing    time.Time
	played      uint64
}

// NewSoundManager creates a new sound manager, nil clock means real time
func NewSoundManager(cfg Config, clock engine.TimeProvider) *SoundManager {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &SoundManager{
		cfg:   cfg,
		clock: clock,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayPing queues a ping panned toward bearing, returns false when muted or rate limited
func (sm *SoundManager) PlayPing(bearing int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.allow() {
		return false
	}

	ping := newPing(sampleRate, sm.cfg.PitchHz, bearing, sm.cfg.Volume)
	speaker.Lock()
	sm.mixer.Add(ping)
	speaker.Unlock()
	sm.played++
	return true
}

// Played returns the number of pings queued so far
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// allow applies the cooldown, caller holds mu
func (sm *SoundManager) allow() bool {
	now := sm.clock.Now()
	if !sm.lastPing.IsZero() && now.Sub(sm.lastPing) < sm.cfg.Cooldown {
		return false
	}
	sm.lastPing = now
	return true
}
