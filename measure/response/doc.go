// Package response measures the magnitude response of an equalizer chain by
// running an impulse through a detached copy of the chain and taking its FFT.
//
// The measurement exercises the real processing path, the biquad kernels
// included, so it serves as an independent check of the closed-form curve
// produced by eq.MagnitudeDB.
//
// # Usage
//
//	spec, err := response.Measure(settings, 48000, 8192)
//	fmt.Printf("1 kHz: %.2f dB\n", spec.At(1000))
package response
