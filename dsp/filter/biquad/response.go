package biquad

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2. Numerator and denominator are
// evaluated in phi = sin^2(w/2), which keeps full precision as w -> 0 where
// the cos(w) form cancels.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	s := math.Sin(math.Pi * freqHz / sampleRate)
	phi := s * s
	return magnitudeSquaredPhi(c.B0, c.B1, c.B2, phi) / magnitudeSquaredPhi(1, c.A1, c.A2, phi)
}

// magnitudeSquaredPhi returns |c0 + c1 z^-1 + c2 z^-2|^2 on the unit circle:
//
//	(c0+c1+c2)^2 - 4(c0c1 + 4c0c2 + c1c2)phi + 16c0c2 phi^2
func magnitudeSquaredPhi(c0, c1, c2, phi float64) float64 {
	sum := c0 + c1 + c2
	return sum*sum - 4*(c0*c1+4*c0*c2+c1*c2)*phi + 16*c0*c2*phi*phi
}

// Magnitude returns the linear gain |H(f)|.
func (c *Coefficients) Magnitude(freqHz, sampleRate float64) float64 {
	return math.Sqrt(c.MagnitudeSquared(freqHz, sampleRate))
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}
