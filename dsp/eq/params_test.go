package eq

import (
	"math"
	"testing"
)

func TestLayout_MatchesParameterSet(t *testing.T) {
	want := []struct {
		id        uint32
		name      string
		min, max  float64
		step, def float64
		choices   int
	}{
		{ParamLowCutFreq, "LowCut Freq", 20, 20000, 1, 20, 0},
		{ParamHighCutFreq, "HiCut Freq", 20, 20000, 1, 20000, 0},
		{ParamPeakFreq, "Peak Freq", 20, 20000, 1, 750, 0},
		{ParamPeakGain, "Peak Gain", -24, 24, 0.5, 0, 0},
		{ParamPeakQuality, "Peak Quality", 0.1, 10, 0.05, 1, 0},
		{ParamLowCutSlope, "LowCut Slope", 0, 3, 1, 0, 4},
		{ParamHighCutSlope, "HiCut Slope", 0, 3, 1, 0, 4},
	}

	layout := Layout()
	if len(layout) != len(want) {
		t.Fatalf("layout has %d parameters", len(layout))
	}
	for i, w := range want {
		p := layout[i]
		if p.ID != w.id || p.Name != w.name || p.Min != w.min || p.Max != w.max ||
			p.Step != w.step || math.Abs(p.Default-w.def) > 1e-12 || len(p.Choices) != w.choices {
			t.Errorf("parameter %d = %+v", i, p)
		}
	}
	if got := layout[ParamLowCutSlope].Choices[3]; got != "48 dB/Oct" {
		t.Fatalf("slope label = %q", got)
	}
}

func TestSettingsFrom_Registry(t *testing.T) {
	r := NewRegistry()
	got := SettingsFrom(r)
	want := DefaultSettings()
	if math.Abs(got.PeakQuality-want.PeakQuality) > 1e-12 {
		t.Fatalf("quality = %v", got.PeakQuality)
	}
	got.PeakQuality = want.PeakQuality
	if got != want {
		t.Fatalf("SettingsFrom(defaults) = %+v, want %+v", got, want)
	}

	_ = r.Set(ParamPeakGain, 7.3)
	_ = r.Set(ParamHighCutSlope, 2)
	_ = r.Set(ParamLowCutFreq, 5)
	s := SettingsFrom(r)
	if s.PeakGainDB != 7.5 || s.HighCutSlope != Slope36 || s.LowCutFreq != 20 {
		t.Fatalf("SettingsFrom after edits = %+v", s)
	}
}
