// Package playback pulls audio through an eq.Processor and hands it to an
// output sink: the system audio device through oto, or a headless clock.
package playback

import (
	"math"
	"math/rand"
)

// Generator produces source samples.
type Generator interface {
	Fill(buf []float64)
}

// NoiseGenerator emits seeded white noise.
type NoiseGenerator struct {
	Amplitude float64
	rng       *rand.Rand
}

// NewNoiseGenerator returns white noise in [-amplitude, amplitude].
func NewNoiseGenerator(seed int64, amplitude float64) *NoiseGenerator {
	return &NoiseGenerator{Amplitude: amplitude, rng: rand.New(rand.NewSource(seed))}
}

// Fill writes len(buf) samples.
func (g *NoiseGenerator) Fill(buf []float64) {
	for i := range buf {
		buf[i] = (g.rng.Float64()*2 - 1) * g.Amplitude
	}
}

// SineGenerator emits a continuous sine tone.
type SineGenerator struct {
	Amplitude float64
	phase     float64
	step      float64
}

// NewSineGenerator returns a sine at freqHz.
func NewSineGenerator(freqHz, sampleRate, amplitude float64) *SineGenerator {
	return &SineGenerator{Amplitude: amplitude, step: 2 * math.Pi * freqHz / sampleRate}
}

// Fill writes len(buf) samples, continuing the phase of the previous call.
func (g *SineGenerator) Fill(buf []float64) {
	for i := range buf {
		buf[i] = g.Amplitude * math.Sin(g.phase)
		g.phase += g.step
		if g.phase >= 2*math.Pi {
			g.phase -= 2 * math.Pi
		}
	}
}
