package eq

import "sync/atomic"

// ChainPosition names a slot of the mono chain.
type ChainPosition int

const (
	LowCut ChainPosition = iota
	Peak
	HighCut

	numPositions
)

func (p ChainPosition) String() string {
	switch p {
	case LowCut:
		return "LowCut"
	case Peak:
		return "Peak"
	case HighCut:
		return "HighCut"
	default:
		return "Unknown"
	}
}

// MonoChain is the per-channel cascade LowCut -> Peak -> HighCut.
//
// The zero value passes audio through unchanged. Process, ProcessSample and
// Reset must be called from one goroutine; the update functions and the
// evaluator may run concurrently with them.
type MonoChain struct {
	lowCut  CutBank
	peak    Stage
	highCut CutBank

	// bypassed holds position-level bypass, independent of the per-stage
	// flags driven by the slope.
	bypassed [numPositions]atomic.Bool
}

// LowCut returns the low-cut bank.
func (c *MonoChain) LowCut() *CutBank { return &c.lowCut }

// Peak returns the peaking stage.
func (c *MonoChain) Peak() *Stage { return &c.peak }

// HighCut returns the high-cut bank.
func (c *MonoChain) HighCut() *CutBank { return &c.highCut }

// SetBypassed bypasses or restores a whole position.
func (c *MonoChain) SetBypassed(pos ChainPosition, bypassed bool) {
	if pos < 0 || pos >= numPositions {
		return
	}
	c.bypassed[pos].Store(bypassed)
}

// IsBypassed reports whether pos is bypassed as a whole.
func (c *MonoChain) IsBypassed(pos ChainPosition) bool {
	if pos < 0 || pos >= numPositions {
		return false
	}
	return c.bypassed[pos].Load()
}

// Process filters buf in place.
func (c *MonoChain) Process(buf []float64) {
	if !c.bypassed[LowCut].Load() {
		c.lowCut.process(buf)
	}
	if !c.bypassed[Peak].Load() {
		c.peak.process(buf)
	}
	if !c.bypassed[HighCut].Load() {
		c.highCut.process(buf)
	}
}

// ProcessSample filters a single sample.
func (c *MonoChain) ProcessSample(x float64) float64 {
	if !c.bypassed[LowCut].Load() {
		x = c.lowCut.processSample(x)
	}
	if !c.bypassed[Peak].Load() {
		x = c.peak.processSample(x)
	}
	if !c.bypassed[HighCut].Load() {
		x = c.highCut.processSample(x)
	}
	return x
}

// Reset clears every delay register. Call it when the stream restarts.
func (c *MonoChain) Reset() {
	c.lowCut.Reset()
	c.peak.Reset()
	c.highCut.Reset()
}

// Detached returns a new chain holding c's current coefficients and bypass
// flags with cleared registers. It may be called while c is processing; the
// copy shares no state with c.
func (c *MonoChain) Detached() *MonoChain {
	d := &MonoChain{}
	d.lowCut.copyFrom(&c.lowCut)
	d.peak.copyFrom(&c.peak)
	d.highCut.copyFrom(&c.highCut)
	for pos := range c.bypassed {
		d.bypassed[pos].Store(c.bypassed[pos].Load())
	}
	return d
}

// Stable reports whether every stage in use has its poles inside the unit
// circle. Bypassed stages and positions are ignored.
func (c *MonoChain) Stable() bool {
	if !c.bypassed[LowCut].Load() && !c.lowCut.stable() {
		return false
	}
	if !c.bypassed[Peak].Load() && !c.peak.stable() {
		return false
	}
	if !c.bypassed[HighCut].Load() && !c.highCut.stable() {
		return false
	}
	return true
}
