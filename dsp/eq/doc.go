// Package eq implements a three-band parametric equalizer filter chain.
//
// A MonoChain runs a low-cut bank, a peaking stage and a high-cut bank in
// that order. Each bank has four fixed stage slots; the slope setting picks
// how many of them are active, and the rest stay bypassed in place.
//
// Coefficients live in per-stage holders that are replaced atomically, so a
// control goroutine can install new designs while the audio goroutine keeps
// processing. Delay registers belong to the stage and survive coefficient
// swaps; only Reset clears them.
//
// The evaluator in response.go reads the same holders and bypass flags to
// compute the magnitude curve, without touching any processing state.
package eq
