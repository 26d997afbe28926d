package design

import (
	"math"
	"testing"

	"github.com/zeljko94/SimpleEQ2/dsp/filter/biquad"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mag(c biquad.Coefficients, hz, sr float64) float64 {
	return c.Magnitude(hz, sr)
}

func magDB(c biquad.Coefficients, hz, sr float64) float64 {
	return c.MagnitudeDB(hz, sr)
}

func cascadeDB(sections []biquad.Coefficients, hz, sr float64) float64 {
	db := 0.0
	for i := range sections {
		db += sections[i].MagnitudeDB(hz, sr)
	}
	return db
}

func assertFiniteCoefficients(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite coefficient: %+v", c)
		}
	}
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	if !c.Stable() {
		t.Fatalf("unstable section: %+v poles=%v", c, c.Poles())
	}
}

func TestPeak_GainAtCenter(t *testing.T) {
	for _, sr := range []float64{44100, 48000, 96000} {
		for _, gain := range []float64{-24, -12, -3, 0, 0.5, 6, 12, 24} {
			for _, q := range []float64{0.1, 0.707, 1, 4, 10} {
				c := Peak(1000, gain, q, sr)
				assertFiniteCoefficients(t, c)
				assertStableSection(t, c)

				got := magDB(c, 1000, sr)
				if !almostEqual(got, gain, 1e-9) {
					t.Fatalf("sr=%v gain=%v q=%v: center=%.12f dB", sr, gain, q, got)
				}
			}
		}
	}
}

func TestPeak_ZeroGainIsIdentity(t *testing.T) {
	c := Peak(750, 0, 1, 48000)
	if c.B0 != 1 || c.B1 != c.A1 || c.B2 != c.A2 {
		t.Fatalf("0 dB peak not identity: %+v", c)
	}
	for _, f := range []float64{20, 100, 750, 5000, 20000} {
		if got := magDB(c, f, 48000); !almostEqual(got, 0, 1e-12) {
			t.Fatalf("f=%v: %.15f dB", f, got)
		}
	}
}

func TestPeak_UnityFarFromCenter(t *testing.T) {
	c := Peak(1000, 12, 2, 48000)
	if got := magDB(c, 10, 48000); !almostEqual(got, 0, 0.05) {
		t.Fatalf("DC region: %.4f dB", got)
	}
	if got := magDB(c, 23000, 48000); !almostEqual(got, 0, 0.3) {
		t.Fatalf("near Nyquist: %.4f dB", got)
	}
}

func TestPeak_CutIsInverseOfBoost(t *testing.T) {
	sr := 48000.0
	boost := Peak(2000, 9, 1.5, sr)
	cut := Peak(2000, -9, 1.5, sr)
	for _, f := range []float64{50, 500, 2000, 8000, 18000} {
		sum := magDB(boost, f, sr) + magDB(cut, f, sr)
		if !almostEqual(sum, 0, 1e-9) {
			t.Fatalf("f=%v: boost+cut = %.12f dB", f, sum)
		}
	}
}

func TestLowpassHighpass_Response(t *testing.T) {
	sr := 48000.0
	lp := Lowpass(1000, ButterworthQ, sr)
	hp := Highpass(1000, ButterworthQ, sr)

	if got := mag(lp, 1, sr); !almostEqual(got, 1, 1e-5) {
		t.Fatalf("LP DC mag=%v", got)
	}
	if got := mag(hp, sr/2-1, sr); !almostEqual(got, 1, 1e-5) {
		t.Fatalf("HP Nyquist mag=%v", got)
	}
	if got := magDB(lp, 1000, sr); !almostEqual(got, -3.0103, 0.001) {
		t.Fatalf("LP cutoff=%.4f dB", got)
	}
	if got := magDB(hp, 1000, sr); !almostEqual(got, -3.0103, 0.001) {
		t.Fatalf("HP cutoff=%.4f dB", got)
	}
	assertStableSection(t, lp)
	assertStableSection(t, hp)
}

func TestDesign_InvalidInputs(t *testing.T) {
	zero := biquad.Coefficients{}
	cases := []struct {
		name string
		got  biquad.Coefficients
	}{
		{"lowpass zero freq", Lowpass(0, 1, 48000)},
		{"lowpass nyquist", Lowpass(24000, 1, 48000)},
		{"highpass negative freq", Highpass(-5, 1, 48000)},
		{"highpass zero sr", Highpass(1000, 1, 0)},
		{"peak above nyquist", Peak(30000, 6, 1, 48000)},
		{"peak NaN freq", Peak(math.NaN(), 6, 1, 48000)},
		{"peak inf sr", Peak(1000, 6, 1, math.Inf(1))},
	}
	for _, tc := range cases {
		if tc.got != zero {
			t.Errorf("%s: got %+v, want zero", tc.name, tc.got)
		}
	}
}

func TestNormalizedQ_FallsBack(t *testing.T) {
	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if got := normalizedQ(q); got != ButterworthQ {
			t.Fatalf("q=%v: got %v", q, got)
		}
	}
	if got := normalizedQ(3); got != 3 {
		t.Fatalf("q=3: got %v", got)
	}

	a := Lowpass(1000, 0, 48000)
	b := Lowpass(1000, ButterworthQ, 48000)
	if a != b {
		t.Fatalf("zero Q should fall back to Butterworth Q: %+v vs %+v", a, b)
	}
}

func TestDecibelsToGain(t *testing.T) {
	if got := DecibelsToGain(0); got != 1 {
		t.Fatalf("0 dB: %v", got)
	}
	if got := DecibelsToGain(20); !almostEqual(got, 10, 1e-12) {
		t.Fatalf("20 dB: %v", got)
	}
	if got := DecibelsToGain(-6.0206); !almostEqual(got, 0.5, 1e-5) {
		t.Fatalf("-6 dB: %v", got)
	}
}
