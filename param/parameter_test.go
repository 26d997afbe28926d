package param

import (
	"math"
	"testing"
)

func TestParameter_QuantizeSteps(t *testing.T) {
	p := New(1, "Peak Quality").Range(0.1, 10).Step(0.05).Default(1).Build()

	tests := []struct {
		in, want float64
	}{
		{1, 1},
		{1.02, 1},
		{1.03, 1.05},
		{-3, 0.1},
		{42, 10},
		{9.99, 10},
	}
	for _, tc := range tests {
		if got := p.SetPlain(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("SetPlain(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if got := p.Plain(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Plain after %v = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParameter_QuantizeContinuous(t *testing.T) {
	p := New(1, "x").Range(-1, 1).Build()
	if got := p.SetPlain(0.123456); got != 0.123456 {
		t.Fatalf("continuous value snapped: %v", got)
	}
	if got := p.SetPlain(math.NaN()); got != 0 {
		t.Fatalf("NaN should map to default, got %v", got)
	}
}

func TestParameter_DefaultApplied(t *testing.T) {
	p := New(3, "Peak Gain").Range(-24, 24).Step(0.5).Default(0.3).Build()
	if p.Default != 0.5 || p.Plain() != 0.5 {
		t.Fatalf("default=%v plain=%v, want 0.5", p.Default, p.Plain())
	}
	p.SetPlain(12)
	p.Reset()
	if p.Plain() != 0.5 {
		t.Fatalf("Reset: %v", p.Plain())
	}
}

func TestParameter_Normalized(t *testing.T) {
	p := New(1, "Freq").Range(20, 20000).Step(1).Default(20).Build()
	if p.Normalized() != 0 {
		t.Fatalf("normalized min = %v", p.Normalized())
	}
	p.SetNormalized(1)
	if p.Plain() != 20000 {
		t.Fatalf("SetNormalized(1) -> %v", p.Plain())
	}
	p.SetNormalized(0.5)
	if p.Plain() != 10010 {
		t.Fatalf("SetNormalized(0.5) -> %v", p.Plain())
	}
	if got := p.Normalize(-5); got != 0 {
		t.Fatalf("Normalize below range = %v", got)
	}
	if got := p.Normalize(1e9); got != 1 {
		t.Fatalf("Normalize above range = %v", got)
	}
}

func TestParameter_Choices(t *testing.T) {
	p := New(5, "LowCut Slope").Choices("12 dB/Oct", "24 dB/Oct", "36 dB/Oct", "48 dB/Oct").Build()

	if !p.IsChoice() || p.Min != 0 || p.Max != 3 || p.Step != 1 {
		t.Fatalf("choice layout: %+v", p)
	}
	if got := p.SetPlain(2.4); got != 2 {
		t.Fatalf("SetPlain(2.4) = %v", got)
	}
	if got := p.String(); got != "36 dB/Oct" {
		t.Fatalf("String = %q", got)
	}
	v, err := p.Parse("48 dB/Oct")
	if err != nil || v != 3 {
		t.Fatalf("Parse = %v, %v", v, err)
	}
}

func TestParameter_FormatParse(t *testing.T) {
	f := New(1, "Freq").Range(20, 20000).Step(1).Formatter(FrequencyFormatter, FrequencyParser).Build()
	if got := f.Format(750); got != "750.0 Hz" {
		t.Fatalf("Format(750) = %q", got)
	}
	if got := f.Format(1500); got != "1.50 kHz" {
		t.Fatalf("Format(1500) = %q", got)
	}

	for in, want := range map[string]float64{
		"750":     750,
		"750 Hz":  750,
		"1.2kHz":  1200,
		"2 kHz":   2000,
		" 40hz  ": 40,
	} {
		got, err := f.Parse(in)
		if err != nil || math.Abs(got-want) > 1e-9 {
			t.Errorf("Parse(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := f.Parse("loud"); err == nil {
		t.Fatal("expected parse error")
	}

	g := New(2, "Gain").Range(-24, 24).Step(0.5).Formatter(DecibelFormatter, DecibelParser).Build()
	if got := g.Format(-6); got != "-6.0 dB" {
		t.Fatalf("Format(-6) = %q", got)
	}
	if v, err := g.Parse("3.5 dB"); err != nil || v != 3.5 {
		t.Fatalf("Parse dB = %v, %v", v, err)
	}

	plain := New(3, "Q").Range(0.1, 10).Step(0.05).Build()
	if got := plain.Format(1.25); got != "1.25" {
		t.Fatalf("default format = %q", got)
	}
}
