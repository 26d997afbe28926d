package response

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/zeljko94/SimpleEQ2/dsp/eq"
)

// MinFFTSize is the smallest accepted FFT length.
const MinFFTSize = 64

var (
	// ErrInvalidFFTSize is returned for sizes that are not a power of two
	// or are below MinFFTSize.
	ErrInvalidFFTSize = errors.New("response: invalid FFT size")
	// ErrInvalidSampleRate is returned for non-positive or non-finite rates.
	ErrInvalidSampleRate = errors.New("response: invalid sample rate")
)

// Spectrum is a measured one-sided magnitude response.
type Spectrum struct {
	// Freqs holds bin centre frequencies from 0 Hz to Nyquist.
	Freqs []float64
	// DB holds the bin magnitudes in dB, floored at eq.MinusInfinityDB.
	DB []float64
}

// Measure prepares a fresh mono chain from s, feeds it a unit impulse of
// fftSize samples and returns the magnitude of the resulting spectrum.
func Measure(s eq.ChainSettings, sampleRate float64, fftSize int) (Spectrum, error) {
	if err := validate(sampleRate, fftSize); err != nil {
		return Spectrum{}, err
	}

	var chain eq.MonoChain
	eq.UpdateChain(&chain, s, sampleRate)
	return measure(&chain, sampleRate, fftSize)
}

// MeasureChain measures the current configuration of chain. It works on a
// detached copy, so chain may be live on the audio path.
func MeasureChain(chain *eq.MonoChain, sampleRate float64, fftSize int) (Spectrum, error) {
	if err := validate(sampleRate, fftSize); err != nil {
		return Spectrum{}, err
	}
	return measure(chain.Detached(), sampleRate, fftSize)
}

func validate(sampleRate float64, fftSize int) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}
	if fftSize < MinFFTSize || fftSize&(fftSize-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}
	return nil
}

// measure runs the impulse through chain, which must be private.
func measure(chain *eq.MonoChain, sampleRate float64, fftSize int) (Spectrum, error) {
	ir := make([]float64, fftSize)
	ir[0] = 1
	chain.Process(ir)
	return impulseSpectrum(ir, sampleRate)
}

func impulseSpectrum(ir []float64, sampleRate float64) (Spectrum, error) {
	n := len(ir)
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("response: fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("response: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	spec := Spectrum{
		Freqs: make([]float64, bins),
		DB:    make([]float64, bins),
	}
	binHz := sampleRate / float64(n)
	for k := range mag {
		spec.Freqs[k] = float64(k) * binHz
		spec.DB[k] = eq.GainToDecibels(mag[k])
	}
	return spec, nil
}

// At returns the response at freq, interpolating linearly between bins.
// Frequencies outside the measured range clamp to the edge bins.
func (s Spectrum) At(freq float64) float64 {
	n := len(s.Freqs)
	if n == 0 {
		return eq.MinusInfinityDB
	}
	if freq <= s.Freqs[0] {
		return s.DB[0]
	}
	if freq >= s.Freqs[n-1] {
		return s.DB[n-1]
	}

	k := sort.SearchFloat64s(s.Freqs, freq)
	f0, f1 := s.Freqs[k-1], s.Freqs[k]
	t := (freq - f0) / (f1 - f0)
	return s.DB[k-1] + t*(s.DB[k]-s.DB[k-1])
}

// Deviation returns the largest absolute difference in dB between the
// measurement and want over the frequencies in [lo, hi] sampled at points.
func (s Spectrum) Deviation(want func(freq float64) float64, lo, hi float64, points int) float64 {
	if points < 2 {
		points = 2
	}
	worst := 0.0
	for i := 0; i < points; i++ {
		f := eq.MapToLog10(float64(i)/float64(points-1), lo, hi)
		worst = math.Max(worst, math.Abs(s.At(f)-want(f)))
	}
	return worst
}
