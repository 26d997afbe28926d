// Package param provides host-style parameters: ranged, stepped values
// that are read lock-free and announced to listeners on change.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter is one named value with a plain range and optional step.
type Parameter struct {
	ID      uint32
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Choices []string

	// Plain value bits, read and written atomically.
	value atomic.Uint64

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Plain returns the current plain value.
func (p *Parameter) Plain() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetPlain stores v after clamping and snapping it to Step, and returns the
// stored value.
func (p *Parameter) SetPlain(v float64) float64 {
	q := p.Quantize(v)
	p.value.Store(math.Float64bits(q))
	return q
}

// Normalized returns the current value mapped onto [0, 1].
func (p *Parameter) Normalized() float64 {
	return p.Normalize(p.Plain())
}

// SetNormalized stores the plain value for n in [0, 1].
func (p *Parameter) SetNormalized(n float64) float64 {
	return p.SetPlain(p.Denormalize(n))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.SetPlain(p.Default)
}

// Quantize clamps v to [Min, Max] and snaps it to the nearest step.
func (p *Parameter) Quantize(v float64) float64 {
	if math.IsNaN(v) {
		return p.Default
	}
	v = math.Min(math.Max(v, p.Min), p.Max)
	if p.Step > 0 {
		v = p.Min + math.Round((v-p.Min)/p.Step)*p.Step
		v = math.Min(v, p.Max)
	}
	return v
}

// Normalize converts plain to [0, 1].
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	n := (plain - p.Min) / (p.Max - p.Min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Denormalize converts [0, 1] to plain.
func (p *Parameter) Denormalize(n float64) float64 {
	return p.Min + n*(p.Max-p.Min)
}

// IsChoice reports whether the parameter selects from labelled options.
func (p *Parameter) IsChoice() bool {
	return len(p.Choices) > 0
}

// Format renders a plain value.
func (p *Parameter) Format(plain float64) string {
	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}
	if p.IsChoice() {
		i := int(math.Round(plain - p.Min))
		if i >= 0 && i < len(p.Choices) {
			return p.Choices[i]
		}
	}
	if p.Step >= 1 {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// String renders the current value.
func (p *Parameter) String() string {
	return p.Format(p.Plain())
}

// Parse converts text to a plain value. Choice labels are accepted for
// choice parameters.
func (p *Parameter) Parse(s string) (float64, error) {
	if p.parseFunc != nil {
		return p.parseFunc(s)
	}
	for i, c := range p.Choices {
		if c == s {
			return p.Min + float64(i), nil
		}
	}
	return strconv.ParseFloat(s, 64)
}
