package eq

import (
	"testing"

	"github.com/zeljko94/SimpleEQ2/dsp/filter/biquad"
)

func TestUpdateCutFilter_BypassFollowsActiveCount(t *testing.T) {
	s := DefaultSettings()
	s.LowCutFreq = 300
	coeffs := MakeLowCutFilter(s, 48000)

	for active := 0; active <= MaxCutStages; active++ {
		var bank CutBank
		UpdateCutFilter(&bank, coeffs, active)
		for i := 0; i < MaxCutStages; i++ {
			st := bank.Stage(i)
			if st.Bypassed() != (i >= active) {
				t.Fatalf("active=%d slot %d bypassed=%v", active, i, st.Bypassed())
			}
			if st.Coefficients() != coeffs[i] {
				t.Fatalf("active=%d slot %d coefficients not installed", active, i)
			}
		}
		if bank.Active() != active {
			t.Fatalf("Active() = %d, want %d", bank.Active(), active)
		}
	}
}

func TestUpdateCutFilter_BypassedSlotsContributeNothing(t *testing.T) {
	const sr = 48000.0
	for slope := Slope12; slope <= Slope48; slope++ {
		s := DefaultSettings()
		s.LowCutFreq, s.LowCutSlope = 800, slope
		s.HighCutFreq = MaxFrequency
		c := preparedChain(s, sr)
		c.SetBypassed(Peak, true)
		c.SetBypassed(HighCut, true)

		coeffs := MakeLowCutFilter(s, sr)
		for _, f := range []float64{50, 400, 800, 1600, 10000} {
			want := 1.0
			for i := 0; i < slope.Stages(); i++ {
				want *= coeffs[i].MagnitudeSquared(f, sr)
			}
			got := magnitudeSquaredAt(c, f, sr)
			if got != want {
				t.Fatalf("%v at %v Hz: |H|^2=%v, want %v", slope, f, got, want)
			}
		}
		for i := slope.Stages(); i < MaxCutStages; i++ {
			if c.LowCut().Stage(i).Coefficients() == biquad.Identity {
				t.Fatalf("%v: unused slot %d should still hold a computed design", slope, i)
			}
		}
	}
}

func TestUpdateChain_Idempotent(t *testing.T) {
	const sr = 44100.0
	s := DefaultSettings()
	s.LowCutFreq, s.LowCutSlope = 150, Slope36
	s.HighCutFreq, s.HighCutSlope = 7000, Slope48
	s.PeakFreq, s.PeakGainDB, s.PeakQuality = 900, 4.5, 0.7

	c := preparedChain(s, sr)
	first := MagnitudeDB(c, sr, 300)
	peakPtr := c.Peak().Holder().p.Load()
	lowPtr := c.LowCut().Stage(2).Holder().p.Load()

	UpdateChain(c, s, sr)
	UpdateCutFilter(c.LowCut(), MakeLowCutFilter(s, sr), s.LowCutSlope.Stages())
	second := MagnitudeDB(c, sr, 300)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("point %d: %v then %v", i, first[i], second[i])
		}
	}
	if c.Peak().Holder().p.Load() != peakPtr || c.LowCut().Stage(2).Holder().p.Load() != lowPtr {
		t.Fatal("identical update republished coefficients")
	}
}

func TestUpdateCoefficients_Replaces(t *testing.T) {
	h := NewHolder(biquad.Identity)
	next := biquad.Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.3}
	UpdateCoefficients(h, next)
	if h.Load() != next {
		t.Fatal("coefficients not replaced")
	}

	var zero Holder
	UpdateCoefficients(&zero, biquad.Identity)
	if zero.p.Load() == nil {
		t.Fatal("first install on an empty holder must publish")
	}
}
