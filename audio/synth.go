package audio

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// waveType defines oscillator wave shapes
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by 2^gain; gain at or below muteGain is silent
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: gain, Silent: gain <= muteGain}
}

const muteGain = -10

// tone is a generated sine of fixed length, nil when freq is out of range
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		log.Printf("[audio] tone %.0fHz: %v", freq, err)
		return nil
	}
	return beep.Take(rate.N(d), s)
}

const (
	slamDuration    = 140 * time.Millisecond
	retractDuration = 30 * time.Millisecond
	pickupNote      = 60 * time.Millisecond
	placeDuration   = 45 * time.Millisecond
)

// newCueStreamer builds the finite streamer for c at the given gain
func newCueStreamer(c Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueSlam:
		body := newEnvelope(newOscillator(70, slamDuration, waveSine, rate), slamDuration, 2*time.Millisecond, 100*time.Millisecond, rate)
		hit := newEnvelope(newOscillator(0, 40*time.Millisecond, waveNoise, rate), 40*time.Millisecond, 0, 35*time.Millisecond, rate)
		s = beep.Mix(body, withVolume(hit, -1.5))

	case CueRetract:
		s = newEnvelope(newOscillator(0, retractDuration, waveNoise, rate), retractDuration, 0, 25*time.Millisecond, rate)

	case CuePickup:
		lo := tone(rate, 660, pickupNote)
		hi := tone(rate, 990, pickupNote)
		if lo == nil || hi == nil {
			return nil
		}
		total := 2 * pickupNote
		s = newEnvelope(beep.Seq(lo, hi), total, 5*time.Millisecond, 30*time.Millisecond, rate)

	case CuePlace:
		s = newEnvelope(newOscillator(440, placeDuration, waveSquare, rate), placeDuration, time.Millisecond, 30*time.Millisecond, rate)

	default:
		return nil
	}
	return withVolume(s, gain)
}
