package eq

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// MaxChannels is the largest channel count accepted by Prepare.
const MaxChannels = 8

var (
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("eq: invalid sample rate")
	// ErrInvalidChannels is returned for channel counts outside [1, MaxChannels].
	ErrInvalidChannels = errors.New("eq: invalid channel count")
)

// Processor runs one MonoChain per channel. All chains are installed from
// the same settings, so channels never diverge.
type Processor struct {
	sampleRate float64
	chains     []MonoChain
	settings   atomic.Pointer[ChainSettings]
}

// NewProcessor returns an unprepared processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Prepare builds the per-channel chains, installs s and clears all state.
// It must not run concurrently with Process.
func (p *Processor) Prepare(sampleRate float64, channels int, s ChainSettings) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}
	if channels < 1 || channels > MaxChannels {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidChannels, channels, MaxChannels)
	}

	p.sampleRate = sampleRate
	p.chains = make([]MonoChain, channels)
	p.Update(s)
	p.Reset()
	return nil
}

// Update installs s into every chain. Safe to call while Process runs.
func (p *Processor) Update(s ChainSettings) {
	for i := range p.chains {
		UpdateChain(&p.chains[i], s, p.sampleRate)
	}
	p.settings.Store(&s)
}

// Process filters each channel buffer in place. Buffers beyond the prepared
// channel count are cleared.
func (p *Processor) Process(buffers [][]float64) {
	for ch, buf := range buffers {
		if ch >= len(p.chains) {
			clear(buf)
			continue
		}
		p.chains[ch].Process(buf)
	}
}

// Reset clears the delay registers of every channel.
func (p *Processor) Reset() {
	for i := range p.chains {
		p.chains[i].Reset()
	}
}

// Chain returns the chain of channel ch, or nil.
func (p *Processor) Chain(ch int) *MonoChain {
	if ch < 0 || ch >= len(p.chains) {
		return nil
	}
	return &p.chains[ch]
}

// Settings returns the last installed settings.
func (p *Processor) Settings() ChainSettings {
	if s := p.settings.Load(); s != nil {
		return *s
	}
	return DefaultSettings()
}

// SampleRate returns the prepared sample rate, or 0.
func (p *Processor) SampleRate() float64 { return p.sampleRate }

// Channels returns the prepared channel count.
func (p *Processor) Channels() int { return len(p.chains) }
