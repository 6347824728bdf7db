package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// attack and release fraction of a tone's length
const envelopeEdge = 0.1

// SweepGenerator is a finite sine tone gliding linearly from one frequency to another
// Amplitude ramps up and down at both ends so clips never start or stop on a click
type SweepGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	volume    float64
	samples   int

	pos   int
	phase float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, startFreq, endFreq float64, d time.Duration, volume float64) *SweepGenerator {
	n := sr.N(d)
	if n < 1 {
		n = 1
	}
	return &SweepGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		volume:    volume,
		samples:   n,
	}
}

// NewToneGenerator creates a fixed-pitch tone
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *SweepGenerator {
	return NewSweepGenerator(sr, freq, freq, d, volume)
}

// Len returns the total sample count
func (g *SweepGenerator) Len() int {
	return g.samples
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			break
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Integrate phase so the glide stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		sample := g.volume * envelope(progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// envelope is a trapezoid over [0,1]
func envelope(progress float64) float64 {
	switch {
	case progress < envelopeEdge:
		return progress / envelopeEdge
	case progress > 1-envelopeEdge:
		return (1 - progress) / envelopeEdge
	default:
		return 1
	}
}

// KickFrequency climbs one semitone per point above the first, capped
func KickFrequency(score int, baseFreq float64, maxSemitones int) float64 {
	steps := score - 1
	if steps < 0 {
		steps = 0
	}
	if steps > maxSemitones {
		steps = maxSemitones
	}
	return baseFreq * math.Pow(2, float64(steps)/12)
}
