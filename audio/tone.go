package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator is a sine sweep with a linear decay envelope
// It streams silence once the envelope has run out
type ToneGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	volume    float64
	length    int
	pos       int
	phase     float64
}

// NewToneGenerator sweeps from startFreq to endFreq over length samples
func NewToneGenerator(sr beep.SampleRate, startFreq, endFreq, volume float64, length int) *ToneGenerator {
	return &ToneGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		volume:    volume,
		length:    max(length, 1),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sample := 0.0
		if g.pos < g.length {
			progress := float64(g.pos) / float64(g.length)
			freq := g.startFreq + (g.endFreq-g.startFreq)*progress

			// Phase accumulation keeps the sweep continuous
			g.phase += 2 * math.Pi * freq / float64(g.sr)
			envelope := 1 - progress
			sample = g.volume * envelope * math.Sin(g.phase)
		}
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
