package eq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/zeljko94/SimpleEQ2/param"
)

func newTestController(t *testing.T, opts ...ControllerOption) (*Controller, *Processor, *param.Registry) {
	t.Helper()
	r := NewRegistry()
	p := NewProcessor()
	if err := p.Prepare(44100, 2, SettingsFrom(r)); err != nil {
		t.Fatal(err)
	}
	c := NewController(r, p, opts...)
	r.AddListener(c.ParameterChanged)
	return c, p, r
}

func TestController_CoalescesBursts(t *testing.T) {
	c, p, r := newTestController(t)

	if c.Poll() {
		t.Fatal("poll without changes rebuilt")
	}

	for i := 0; i < 25; i++ {
		_ = r.Set(ParamPeakGain, float64(i%10))
		_ = r.Set(ParamPeakFreq, 500+float64(i))
	}
	if !c.Dirty() {
		t.Fatal("changes did not mark dirty")
	}
	if !c.Poll() {
		t.Fatal("poll after changes did not rebuild")
	}
	if c.Rebuilds() != 1 {
		t.Fatalf("rebuilds = %d, want 1", c.Rebuilds())
	}
	if c.Poll() || c.Rebuilds() != 1 {
		t.Fatal("second poll rebuilt again")
	}

	s := c.Settings()
	if s.PeakGainDB != 4 || s.PeakFreq != 524 {
		t.Fatalf("rebuilt from stale values: %+v", s)
	}
	if p.Settings() != s {
		t.Fatal("processor not updated")
	}
	want := MakePeakFilter(s, 44100)
	if p.Chain(1).Peak().Coefficients() != want {
		t.Fatal("peak coefficients not installed")
	}
}

func TestController_InitialInstall(t *testing.T) {
	r := NewRegistry()
	_ = r.Set(ParamLowCutSlope, 3)
	p := NewProcessor()
	if err := p.Prepare(48000, 1, DefaultSettings()); err != nil {
		t.Fatal(err)
	}
	c := NewController(r, p)
	if c.Settings().LowCutSlope != Slope48 || p.Chain(0).LowCut().Active() != 4 {
		t.Fatal("constructor did not install the current snapshot")
	}
	if c.Rebuilds() != 0 {
		t.Fatal("initial install counted as a rebuild")
	}
}

func TestController_Hooks(t *testing.T) {
	var logs []string
	var rebuilt []ChainSettings
	c, _, r := newTestController(t,
		WithLogf(func(format string, args ...any) {
			logs = append(logs, fmt.Sprintf(format, args...))
		}),
		WithOnRebuild(func(s ChainSettings) { rebuilt = append(rebuilt, s) }),
		nil,
	)

	_ = r.Set(ParamHighCutFreq, 8000)
	c.Poll()

	if len(rebuilt) != 1 || rebuilt[0].HighCutFreq != 8000 {
		t.Fatalf("OnRebuild calls = %+v", rebuilt)
	}
	if len(logs) != 1 || !strings.Contains(logs[0], "rebuild 1") {
		t.Fatalf("logs = %q", logs)
	}
}

func TestController_RunPollsUntilCancelled(t *testing.T) {
	done := make(chan struct{}, 1)
	c, _, r := newTestController(t, WithOnRebuild(func(ChainSettings) {
		select {
		case done <- struct{}{}:
		default:
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx, time.Millisecond) }()

	_ = r.Set(ParamPeakGain, -3)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run never rebuilt")
	}

	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
	if c.Rebuilds() < 1 {
		t.Fatal("no rebuild counted")
	}
}
