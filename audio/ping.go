package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// PingGenerator is a sonar blip: a sine tone with a short attack and exponential decay
type PingGenerator struct {
	sr       beep.SampleRate
	freq     float64
	pos      int
	duration int
	attack   int
	decay    float64 // Envelope time constant in samples
}

// NewPingGenerator creates a ping of the given pitch and length
func NewPingGenerator(sr beep.SampleRate, freq float64, duration time.Duration) *PingGenerator {
	samples := sr.N(duration)
	return &PingGenerator{
		sr:       sr,
		freq:     freq,
		duration: samples,
		attack:   sr.N(3 * time.Millisecond),
		decay:    float64(samples) / 5,
	}
}

func (g *PingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-float64(g.pos) / g.decay)
		if g.pos < g.attack {
			env *= float64(g.pos) / float64(g.attack)
		}
		sample := 0.4 * env * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PingGenerator) Err() error {
	return nil
}

// bearingPan maps a compass bearing to stereo position: left at 270, right at 90
func bearingPan(bearing int) float64 {
	return math.Sin(float64(bearing) * math.Pi / 180)
}

// newPing assembles the ping chain: tone, stereo pan from bearing, volume
func newPing(sr beep.SampleRate, freq float64, bearing int, vol float64) beep.Streamer {
	tone := NewPingGenerator(sr, freq, pingDuration)
	panned := &effects.Pan{Streamer: tone, Pan: bearingPan(bearing)}
	return newVolume(panned, vol)
}

// newVolume wraps s with a linear volume, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
