package eq

import "fmt"

// Slope selects the roll-off of a cut bank.
type Slope int

const (
	Slope12 Slope = iota
	Slope24
	Slope36
	Slope48
)

// Stages returns the number of active 2-pole sections for the slope.
func (s Slope) Stages() int {
	return int(s.clamp()) + 1
}

// Order returns the Butterworth order realized by the slope.
func (s Slope) Order() int {
	return 2 * s.Stages()
}

// DBPerOctave returns the nominal stopband slope.
func (s Slope) DBPerOctave() int {
	return 12 * s.Stages()
}

func (s Slope) String() string {
	return fmt.Sprintf("%d dB/Oct", s.DBPerOctave())
}

func (s Slope) clamp() Slope {
	switch {
	case s < Slope12:
		return Slope12
	case s > Slope48:
		return Slope48
	default:
		return s
	}
}

// SlopeFromValue maps a choice parameter value onto a Slope.
func SlopeFromValue(v float64) Slope {
	return Slope(int(v + 0.5)).clamp()
}

// ChainSettings is an immutable snapshot of every equalizer parameter.
type ChainSettings struct {
	LowCutFreq   float64
	HighCutFreq  float64
	PeakFreq     float64
	PeakGainDB   float64
	PeakQuality  float64
	LowCutSlope  Slope
	HighCutSlope Slope
}

// DefaultSettings returns the parameter defaults: cut filters at the band
// edges with 12 dB/Oct slopes and a neutral peak at 750 Hz.
func DefaultSettings() ChainSettings {
	return ChainSettings{
		LowCutFreq:   MinFrequency,
		HighCutFreq:  MaxFrequency,
		PeakFreq:     750,
		PeakGainDB:   0,
		PeakQuality:  1,
		LowCutSlope:  Slope12,
		HighCutSlope: Slope12,
	}
}
