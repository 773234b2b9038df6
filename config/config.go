package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-radar/audio"
	"github.com/lixenwraith/vi-radar/sweep"
)

// ─── Section configs ────────────────────────────────────────────────────

// RadarConfig sizes the container and drives the sweep
type RadarConfig struct {
	Width            float64       `yaml:"width"`
	Height           float64       `yaml:"height"`
	Period           time.Duration `yaml:"period"`
	Indicators       int           `yaml:"indicators"`
	IndicatorSpacing time.Duration `yaml:"indicator_spacing"`
	Tick             time.Duration `yaml:"tick"`
	WrapAware        bool          `yaml:"wrap_aware"`
}

// HighlightConfig shapes the flash and fade of illuminated points
type HighlightConfig struct {
	Fade  time.Duration `yaml:"fade"`
	Floor float64       `yaml:"floor"`
	Idle  float64       `yaml:"idle"`
}

// FeedConfig selects where points come from
type FeedConfig struct {
	Simulate   bool          `yaml:"simulate"`
	Targets    int           `yaml:"targets"`
	Interval   time.Duration `yaml:"interval"`
	Drift      float64       `yaml:"drift"` // Max movement per update, container units
	Seed       int64         `yaml:"seed"`  // 0 seeds from the clock
	PointsFile string        `yaml:"points_file"`
}

// AudioConfig controls sonar pings
type AudioConfig struct {
	Enabled  bool          `yaml:"enabled"`
	PingHz   float64       `yaml:"ping_hz"`
	Volume   float64       `yaml:"volume"`
	Cooldown time.Duration `yaml:"cooldown"`
}

// DisplayConfig controls the frontends
type DisplayConfig struct {
	FPS    int  `yaml:"fps"`
	Labels bool `yaml:"labels"` // Print bearings next to lit points
}

// Config is the top-level structure of the YAML file
type Config struct {
	Radar     RadarConfig     `yaml:"radar"`
	Highlight HighlightConfig `yaml:"highlight"`
	Feed      FeedConfig      `yaml:"feed"`
	Audio     AudioConfig     `yaml:"audio"`
	Display   DisplayConfig   `yaml:"display"`
}

// ─── Defaults ───────────────────────────────────────────────────────────

// Default returns the configuration used when no file is given
func Default() *Config {
	s := sweep.DefaultConfig()
	a := audio.DefaultConfig()
	return &Config{
		Radar: RadarConfig{
			Width:            400,
			Height:           400,
			Period:           s.Period,
			Indicators:       s.Indicators,
			IndicatorSpacing: s.IndicatorSpacing,
			Tick:             s.TickInterval,
		},
		Highlight: HighlightConfig{
			Fade:  s.FadeDuration,
			Floor: s.FadeFloor,
			Idle:  s.IdleOpacity,
		},
		Feed: FeedConfig{
			Simulate: true,
			Targets:  8,
			Interval: 3 * time.Second,
			Drift:    6,
		},
		Audio: AudioConfig{
			Enabled:  a.Enabled,
			PingHz:   a.PitchHz,
			Volume:   a.Volume,
			Cooldown: a.Cooldown,
		},
		Display: DisplayConfig{
			FPS: 30,
		},
	}
}

// ─── Loader ─────────────────────────────────────────────────────────────

// Load reads path over the defaults, an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the sweep cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Radar.Width <= 0 || c.Radar.Height <= 0 {
		errs = append(errs, fmt.Errorf("radar size %vx%v must be positive", c.Radar.Width, c.Radar.Height))
	}
	if c.Radar.Period <= 0 {
		errs = append(errs, fmt.Errorf("radar period %v must be positive", c.Radar.Period))
	}
	if c.Radar.Indicators < 2 {
		errs = append(errs, fmt.Errorf("radar needs at least 2 indicators, got %d", c.Radar.Indicators))
	}
	if c.Radar.Tick <= 0 {
		errs = append(errs, fmt.Errorf("radar tick %v must be positive", c.Radar.Tick))
	}
	if c.Highlight.Floor < 0 || c.Highlight.Floor > 1 {
		errs = append(errs, fmt.Errorf("highlight floor %v outside [0, 1]", c.Highlight.Floor))
	}
	if c.Feed.Simulate && c.Feed.Interval <= 0 {
		errs = append(errs, fmt.Errorf("feed interval %v must be positive", c.Feed.Interval))
	}
	if c.Feed.Targets < 0 {
		errs = append(errs, fmt.Errorf("feed targets %d must not be negative", c.Feed.Targets))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display fps %d must be positive", c.Display.FPS))
	}
	return errors.Join(errs...)
}

// Sweep converts the radar and highlight sections into a sweep.Config
func (c *Config) Sweep() sweep.Config {
	return sweep.Config{
		Period:           c.Radar.Period,
		Indicators:       c.Radar.Indicators,
		IndicatorSpacing: c.Radar.IndicatorSpacing,
		TickInterval:     c.Radar.Tick,
		FadeDuration:     c.Highlight.Fade,
		FadeFloor:        c.Highlight.Floor,
		IdleOpacity:      c.Highlight.Idle,
		WrapAware:        c.Radar.WrapAware,
	}
}

// AudioSettings converts the audio section into an audio.Config
func (c *Config) AudioSettings() audio.Config {
	return audio.Config{
		Enabled:  c.Audio.Enabled,
		PitchHz:  c.Audio.PingHz,
		Volume:   c.Audio.Volume,
		Cooldown: c.Audio.Cooldown,
	}
}

// FrameInterval is the redraw period derived from Display.FPS
func (c *Config) FrameInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.Display.FPS)
}
