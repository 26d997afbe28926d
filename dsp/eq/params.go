package eq

import "github.com/zeljko94/SimpleEQ2/param"

// Parameter IDs, in layout order.
const (
	ParamLowCutFreq uint32 = iota
	ParamHighCutFreq
	ParamPeakFreq
	ParamPeakGain
	ParamPeakQuality
	ParamLowCutSlope
	ParamHighCutSlope
)

// ValueSource supplies current plain parameter values by ID.
// [param.Registry] satisfies it.
type ValueSource interface {
	PlainValue(id uint32) float64
}

// SlopeChoices are the labels of the slope parameters.
func SlopeChoices() []string {
	labels := make([]string, 0, 4)
	for s := Slope12; s <= Slope48; s++ {
		labels = append(labels, s.String())
	}
	return labels
}

// Layout returns fresh parameter definitions for the equalizer.
func Layout() []*param.Parameter {
	freq := func(id uint32, name string, def float64) *param.Parameter {
		return param.New(id, name).
			Range(MinFrequency, MaxFrequency).
			Step(1).
			Default(def).
			Unit("Hz").
			Formatter(param.FrequencyFormatter, param.FrequencyParser).
			Build()
	}

	return []*param.Parameter{
		freq(ParamLowCutFreq, "LowCut Freq", MinFrequency),
		freq(ParamHighCutFreq, "HiCut Freq", MaxFrequency),
		freq(ParamPeakFreq, "Peak Freq", 750),
		param.New(ParamPeakGain, "Peak Gain").
			Range(-24, 24).
			Step(0.5).
			Default(0).
			Unit("dB").
			Formatter(param.DecibelFormatter, param.DecibelParser).
			Build(),
		param.New(ParamPeakQuality, "Peak Quality").
			Range(0.1, 10).
			Step(0.05).
			Default(1).
			Build(),
		param.New(ParamLowCutSlope, "LowCut Slope").Choices(SlopeChoices()...).Build(),
		param.New(ParamHighCutSlope, "HiCut Slope").Choices(SlopeChoices()...).Build(),
	}
}

// NewRegistry returns a registry populated with Layout.
func NewRegistry() *param.Registry {
	r := param.NewRegistry()
	r.Add(Layout()...)
	return r
}

// SettingsFrom reads a complete snapshot from src.
func SettingsFrom(src ValueSource) ChainSettings {
	return ChainSettings{
		LowCutFreq:   src.PlainValue(ParamLowCutFreq),
		HighCutFreq:  src.PlainValue(ParamHighCutFreq),
		PeakFreq:     src.PlainValue(ParamPeakFreq),
		PeakGainDB:   src.PlainValue(ParamPeakGain),
		PeakQuality:  src.PlainValue(ParamPeakQuality),
		LowCutSlope:  SlopeFromValue(src.PlainValue(ParamLowCutSlope)),
		HighCutSlope: SlopeFromValue(src.PlainValue(ParamHighCutSlope)),
	}
}
