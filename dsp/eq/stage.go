package eq

import (
	"sync/atomic"

	"github.com/zeljko94/SimpleEQ2/dsp/filter/biquad"
)

// MaxCutStages is the fixed slot count of a cut bank.
const MaxCutStages = 4

// Holder owns one coefficient set and replaces it atomically.
//
// Every Store publishes a fresh immutable value, so readers always see a
// complete set. The zero Holder reads as [biquad.Identity].
type Holder struct {
	p atomic.Pointer[biquad.Coefficients]
}

// NewHolder returns a holder initialized with c.
func NewHolder(c biquad.Coefficients) *Holder {
	h := &Holder{}
	h.Store(c)
	return h
}

// Load returns the current coefficient set.
func (h *Holder) Load() biquad.Coefficients {
	if c := h.p.Load(); c != nil {
		return *c
	}
	return biquad.Identity
}

// Store publishes c.
func (h *Holder) Store(c biquad.Coefficients) {
	h.p.Store(&c)
}

// Stage is one biquad slot in the chain.
//
// The coefficient holder and bypass flag may be touched from any goroutine.
// The section registers are owned by the goroutine that calls the processing
// methods and Reset.
type Stage struct {
	coeffs   Holder
	bypassed atomic.Bool
	section  biquad.Section
}

// Holder returns the stage's shared coefficient holder.
func (s *Stage) Holder() *Holder { return &s.coeffs }

// Coefficients returns the currently installed coefficients.
func (s *Stage) Coefficients() biquad.Coefficients { return s.coeffs.Load() }

// Bypassed reports whether the stage is skipped.
func (s *Stage) Bypassed() bool { return s.bypassed.Load() }

// SetBypassed toggles the stage. Registers are left untouched.
func (s *Stage) SetBypassed(bypassed bool) { s.bypassed.Store(bypassed) }

// State returns the delay registers.
func (s *Stage) State() [2]float64 { return s.section.State() }

// Reset clears the delay registers.
func (s *Stage) Reset() { s.section.Reset() }

func (s *Stage) process(buf []float64) {
	if s.bypassed.Load() {
		return
	}
	s.section.Coefficients = s.coeffs.Load()
	s.section.ProcessBlock(buf)
}

func (s *Stage) processSample(x float64) float64 {
	if s.bypassed.Load() {
		return x
	}
	s.section.Coefficients = s.coeffs.Load()
	return s.section.ProcessSample(x)
}

func (s *Stage) magnitudeSquared(freq, sampleRate float64) float64 {
	if s.bypassed.Load() {
		return 1
	}
	c := s.coeffs.Load()
	return c.MagnitudeSquared(freq, sampleRate)
}

func (s *Stage) copyFrom(o *Stage) {
	s.coeffs.Store(o.coeffs.Load())
	s.bypassed.Store(o.bypassed.Load())
}

func (s *Stage) stable() bool {
	if s.bypassed.Load() {
		return true
	}
	c := s.coeffs.Load()
	return c.Stable()
}

// CutBank is a fixed array of stages of which the first Active are used.
type CutBank struct {
	stages [MaxCutStages]Stage
}

// Stage returns slot i, or nil when i is out of range.
func (b *CutBank) Stage(i int) *Stage {
	if i < 0 || i >= MaxCutStages {
		return nil
	}
	return &b.stages[i]
}

// Active returns the number of stages that are not bypassed.
func (b *CutBank) Active() int {
	n := 0
	for i := range b.stages {
		if !b.stages[i].Bypassed() {
			n++
		}
	}
	return n
}

// Reset clears the registers of every slot.
func (b *CutBank) Reset() {
	for i := range b.stages {
		b.stages[i].Reset()
	}
}

func (b *CutBank) process(buf []float64) {
	for i := range b.stages {
		b.stages[i].process(buf)
	}
}

func (b *CutBank) processSample(x float64) float64 {
	for i := range b.stages {
		x = b.stages[i].processSample(x)
	}
	return x
}

func (b *CutBank) magnitudeSquared(freq, sampleRate float64) float64 {
	m := 1.0
	for i := range b.stages {
		m *= b.stages[i].magnitudeSquared(freq, sampleRate)
	}
	return m
}

func (b *CutBank) copyFrom(o *CutBank) {
	for i := range b.stages {
		b.stages[i].copyFrom(&o.stages[i])
	}
}

func (b *CutBank) stable() bool {
	for i := range b.stages {
		if !b.stages[i].stable() {
			return false
		}
	}
	return true
}
