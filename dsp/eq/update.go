package eq

import "github.com/zeljko94/SimpleEQ2/dsp/filter/biquad"

// UpdateCoefficients atomically replaces the set held by h. Readers observe
// either the old or the new set, never a mix. Installing an identical set is
// a no-op.
func UpdateCoefficients(h *Holder, c biquad.Coefficients) {
	if h.p.Load() != nil && h.Load() == c {
		return
	}
	h.Store(c)
}

// UpdateCutFilter installs coeffs into the bank and activates the first
// active slots. Each slot gets its coefficients before its bypass flag is
// cleared, so an active slot never runs with a stale set.
func UpdateCutFilter(bank *CutBank, coeffs [MaxCutStages]biquad.Coefficients, active int) {
	for i := range bank.stages {
		st := &bank.stages[i]
		UpdateCoefficients(st.Holder(), coeffs[i])
		st.SetBypassed(i >= active)
	}
}

// UpdatePeakFilter installs the peaking design for s.
func UpdatePeakFilter(chain *MonoChain, s ChainSettings, sampleRate float64) {
	UpdateCoefficients(chain.peak.Holder(), MakePeakFilter(s, sampleRate))
}

// UpdateLowCutFilter installs the low-cut design for s.
func UpdateLowCutFilter(chain *MonoChain, s ChainSettings, sampleRate float64) {
	UpdateCutFilter(&chain.lowCut, MakeLowCutFilter(s, sampleRate), s.LowCutSlope.Stages())
}

// UpdateHighCutFilter installs the high-cut design for s.
func UpdateHighCutFilter(chain *MonoChain, s ChainSettings, sampleRate float64) {
	UpdateCutFilter(&chain.highCut, MakeHighCutFilter(s, sampleRate), s.HighCutSlope.Stages())
}

// UpdateChain installs every stage of chain from s.
func UpdateChain(chain *MonoChain, s ChainSettings, sampleRate float64) {
	UpdateLowCutFilter(chain, s, sampleRate)
	UpdatePeakFilter(chain, s, sampleRate)
	UpdateHighCutFilter(chain, s, sampleRate)
}
