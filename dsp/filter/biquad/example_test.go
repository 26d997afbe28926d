package biquad_test

import (
	"fmt"

	"github.com/zeljko94/SimpleEQ2/dsp/filter/biquad"
)

// A two-tap average: H(z) = (1 + z^-1) / 2.
var average = biquad.Coefficients{B0: 0.5, B1: 0.5}

func ExampleSection_ProcessBlock() {
	s := biquad.NewSection(average)
	buf := []float64{1, 0, 0, 0}
	s.ProcessBlock(buf)

	fmt.Printf("%.2f %.2f %.2f %.2f\n", buf[0], buf[1], buf[2], buf[3])
	// Output:
	// 0.50 0.50 0.00 0.00
}

func ExampleCoefficients_MagnitudeDB() {
	c := average
	for _, freq := range []float64{6000, 12000, 18000} {
		fmt.Printf("%5.0f Hz: %+.2f dB\n", freq, c.MagnitudeDB(freq, 48000))
	}
	// Output:
	//  6000 Hz: -0.69 dB
	// 12000 Hz: -3.01 dB
	// 18000 Hz: -8.34 dB
}

func ExampleCoefficients_Stable() {
	inside := biquad.Coefficients{B0: 1, A1: -1.8, A2: 0.81}
	outside := biquad.Coefficients{B0: 1, A1: -2.2, A2: 1.21}
	fmt.Println(inside.Stable(), outside.Stable())
	// Output:
	// true false
}
