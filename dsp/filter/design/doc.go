// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad. Single sections follow the RBJ audio-EQ cookbook; the
// Butterworth cascades place each section's Q from the pole angles of the
// full-order prototype, so the cascade as a whole stays maximally flat.
//
// Designers do not validate beyond degenerate input: a frequency outside
// (0, sampleRate/2) or a non-positive sample rate yields zero coefficients.
package design
