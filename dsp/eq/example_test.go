package eq_test

import (
	"fmt"
	"math"

	"github.com/zeljko94/SimpleEQ2/dsp/eq"
)

func ExampleMagnitudeDB() {
	s := eq.DefaultSettings()
	s.PeakFreq, s.PeakGainDB = 1000, 12

	var chain eq.MonoChain
	eq.UpdateChain(&chain, s, 44100)

	fmt.Printf("%.2f dB\n", 20*math.Log10(eq.MagnitudeAt(&chain, 1000, 44100)))
	// Output:
	// 12.00 dB
}

func ExampleController() {
	reg := eq.NewRegistry()
	proc := eq.NewProcessor()
	if err := proc.Prepare(48000, 2, eq.SettingsFrom(reg)); err != nil {
		fmt.Println(err)
		return
	}

	ctl := eq.NewController(reg, proc)
	reg.AddListener(ctl.ParameterChanged)

	_ = reg.Set(eq.ParamPeakGain, 6)
	_ = reg.Set(eq.ParamPeakFreq, 2000)
	_ = reg.Set(eq.ParamLowCutSlope, 2)

	fmt.Println(ctl.Poll(), ctl.Rebuilds())
	fmt.Println(proc.Chain(0).LowCut().Active(), ctl.Settings().LowCutSlope)
	// Output:
	// true 1
	// 3 36 dB/Oct
}
