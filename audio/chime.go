// Package audio provides the optional activation chime: a short sine
// blip whose pitch follows activation intensity. Initialization
// failure is non-fatal; the visualization runs silently.
package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	blipDuration = 60 * time.Millisecond

	// Pitch range mapped from intensity 0..1
	freqMin = 440.0
	freqMax = 1320.0
)

// Chime plays activation blips through the system speaker
type Chime struct {
	enabled atomic.Bool
}

// NewChime initializes the speaker. On error the chime stays disabled
// and the error is returned for logging only.
func NewChime() (*Chime, error) {
	c := &Chime{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.enabled.Store(true)
	return c, nil
}

// Close releases the speaker
func (c *Chime) Close() {
	if c.enabled.CompareAndSwap(true, false) {
		speaker.Close()
	}
}

// Activation plays a short blip for one region activation. Non-blocking:
// the streamer is handed to the speaker mixer and plays out of band.
func (c *Chime) Activation(intensity float64) {
	if !c.enabled.Load() {
		return
	}
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	freq := freqMin + (freqMax-freqMin)*intensity
	speaker.Play(newBlip(freq, blipDuration))
}

// blip is a fixed-length sine oscillator with a linear fade-out
type blip struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newBlip(freq float64, d time.Duration) beep.Streamer {
	return &blip{
		freq:     freq,
		duration: sampleRate.N(d),
	}
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.duration {
			return i, false
		}

		fade := 1 - float64(b.position)/float64(b.duration)
		val := math.Sin(2*math.Pi*b.phase) * 0.3 * fade

		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.freq / float64(sampleRate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }
