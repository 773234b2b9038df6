package sweep

import "time"

// Config tunes the sweep animation and highlight behavior
type Config struct {
	Period           time.Duration // One full beam rotation
	Indicators       int           // Trail length in indicators
	IndicatorSpacing time.Duration // Start delay between consecutive indicators
	TickInterval     time.Duration // Sweep window polling cadence
	FadeDuration     time.Duration // Flash to floor fade time
	FadeFloor        float64       // Opacity a highlighted point settles at
	IdleOpacity      float64       // Opacity of points the beam has not reached yet
	WrapAware        bool          // Match windows that cross 0°
}

// DefaultConfig matches the classic widget: 15s rotation, 10 indicators 100ms apart, 25ms polling
func DefaultConfig() Config {
	return Config{
		Period:           15 * time.Second,
		Indicators:       10,
		IndicatorSpacing: 100 * time.Millisecond,
		TickInterval:     25 * time.Millisecond,
		FadeDuration:     1700 * time.Millisecond,
		FadeFloor:        0.4,
		IdleOpacity:      0,
	}
}

// withDefaults fills zero fields so a partially populated Config stays usable
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Period <= 0 {
		c.Period = d.Period
	}
	if c.Indicators <= 0 {
		c.Indicators = d.Indicators
	}
	if c.IndicatorSpacing <= 0 {
		c.IndicatorSpacing = d.IndicatorSpacing
	}
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.FadeDuration <= 0 {
		c.FadeDuration = d.FadeDuration
	}
	c.FadeFloor = clamp01(c.FadeFloor)
	c.IdleOpacity = clamp01(c.IdleOpacity)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
