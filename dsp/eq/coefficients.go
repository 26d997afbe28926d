package eq

import (
	"math"

	"github.com/zeljko94/SimpleEQ2/dsp/filter/biquad"
	"github.com/zeljko94/SimpleEQ2/dsp/filter/design"
)

// Frequency range of every frequency parameter and of the response curve.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
)

// maxNyquistRatio keeps designed frequencies clear of Nyquist.
const maxNyquistRatio = 0.49

// ClampFrequency limits freq to [MinFrequency, 0.49*sampleRate].
// The upper bound wins when the sample rate is too low for both.
func ClampFrequency(freq, sampleRate float64) float64 {
	if math.IsNaN(freq) || freq < MinFrequency {
		freq = MinFrequency
	}
	if hi := maxNyquistRatio * sampleRate; freq > hi {
		freq = hi
	}
	return freq
}

// MakePeakFilter designs the peaking stage from s.
func MakePeakFilter(s ChainSettings, sampleRate float64) biquad.Coefficients {
	return design.Peak(ClampFrequency(s.PeakFreq, sampleRate), s.PeakGainDB, s.PeakQuality, sampleRate)
}

// MakeLowCutFilter designs the four low-cut slots from s.
//
// The first s.LowCutSlope.Stages() slots form a Butterworth high-pass of
// order 2*stages. The remaining slots hold a plain 2-pole Butterworth
// section that is installed but bypassed.
func MakeLowCutFilter(s ChainSettings, sampleRate float64) [MaxCutStages]biquad.Coefficients {
	return makeCutBank(design.ButterworthHP, design.Highpass, s.LowCutFreq, s.LowCutSlope, sampleRate)
}

// MakeHighCutFilter designs the four high-cut slots from s.
// The slot layout matches [MakeLowCutFilter] with a Butterworth low-pass.
func MakeHighCutFilter(s ChainSettings, sampleRate float64) [MaxCutStages]biquad.Coefficients {
	return makeCutBank(design.ButterworthLP, design.Lowpass, s.HighCutFreq, s.HighCutSlope, sampleRate)
}

func makeCutBank(
	cascade func(freq float64, order int, sampleRate float64) []biquad.Coefficients,
	section func(freq, q, sampleRate float64) biquad.Coefficients,
	freq float64,
	slope Slope,
	sampleRate float64,
) [MaxCutStages]biquad.Coefficients {
	var out [MaxCutStages]biquad.Coefficients
	freq = ClampFrequency(freq, sampleRate)

	n := copy(out[:], cascade(freq, slope.Order(), sampleRate))
	for i := n; i < MaxCutStages; i++ {
		out[i] = section(freq, design.ButterworthQ, sampleRate)
	}
	return out
}
