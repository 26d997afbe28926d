package eq

import "math"

// MinusInfinityDB is the floor of every decibel value produced here.
const MinusInfinityDB = -100.0

// MapToLog10 maps t in [0, 1] log-uniformly onto [lo, hi].
func MapToLog10(t, lo, hi float64) float64 {
	return lo * math.Pow(hi/lo, t)
}

// GainToDecibels converts a linear gain to dB, floored at MinusInfinityDB.
func GainToDecibels(gain float64) float64 {
	if gain <= 0 {
		return MinusInfinityDB
	}
	return math.Max(20*math.Log10(gain), MinusInfinityDB)
}

// MagnitudeAt returns the linear magnitude of chain at freq, multiplying
// every stage that is not bypassed.
func MagnitudeAt(chain *MonoChain, freq, sampleRate float64) float64 {
	return math.Sqrt(magnitudeSquaredAt(chain, freq, sampleRate))
}

func magnitudeSquaredAt(chain *MonoChain, freq, sampleRate float64) float64 {
	m := 1.0
	if !chain.IsBypassed(LowCut) {
		m *= chain.lowCut.magnitudeSquared(freq, sampleRate)
	}
	if !chain.IsBypassed(Peak) {
		m *= chain.peak.magnitudeSquared(freq, sampleRate)
	}
	if !chain.IsBypassed(HighCut) {
		m *= chain.highCut.magnitudeSquared(freq, sampleRate)
	}
	return math.Max(m, 0)
}

// MagnitudeDB evaluates chain at width log-spaced points from MinFrequency
// to MaxFrequency and returns the response in dB.
func MagnitudeDB(chain *MonoChain, sampleRate float64, width int) []float64 {
	if width <= 0 {
		return nil
	}
	mags := make([]float64, width)
	MagnitudeDBInto(mags, chain, sampleRate)
	return mags
}

// MagnitudeDBInto is MagnitudeDB with a caller-owned buffer; len(dst) is the
// point count.
func MagnitudeDBInto(dst []float64, chain *MonoChain, sampleRate float64) {
	for i := range dst {
		freq := PointFrequency(i, len(dst))
		m2 := magnitudeSquaredAt(chain, freq, sampleRate)
		if m2 <= 0 {
			dst[i] = MinusInfinityDB
			continue
		}
		dst[i] = math.Max(10*math.Log10(m2), MinusInfinityDB)
	}
}

// PointFrequency returns the frequency of point i of a width-point curve.
func PointFrequency(i, width int) float64 {
	return MapToLog10(float64(i)/float64(width), MinFrequency, MaxFrequency)
}
