// Package biquad provides the second-order IIR runtime used by the equalizer.
//
// A [Section] runs Direct Form II Transposed processing for one set of
// [Coefficients]. Block processing is dispatched to the fastest kernel
// registered for the running CPU. Coefficient evaluation helpers
// ([Coefficients.MagnitudeSquared], [Coefficients.Poles], ...) work on the
// coefficients alone and never touch filter state.
//
// Coefficient design lives in dsp/filter/design.
package biquad
