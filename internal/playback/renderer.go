package playback

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/zeljko94/SimpleEQ2/dsp/eq"
)

// Renderer produces processed blocks: the generator feeds every channel and
// the processor filters them in place.
//
// Render must be called from a single goroutine. Level may be read from any.
type Renderer struct {
	proc   *eq.Processor
	gen    Generator
	bufs   [][]float64
	blocks atomic.Uint64
	level  atomic.Uint64
}

// NewRenderer allocates frames samples per prepared channel of proc.
func NewRenderer(proc *eq.Processor, gen Generator, frames int) *Renderer {
	if frames <= 0 {
		frames = 512
	}
	bufs := make([][]float64, max(proc.Channels(), 1))
	for i := range bufs {
		bufs[i] = make([]float64, frames)
	}
	return &Renderer{proc: proc, gen: gen, bufs: bufs}
}

// Frames returns the block length.
func (r *Renderer) Frames() int { return len(r.bufs[0]) }

// Channels returns the channel count of rendered blocks.
func (r *Renderer) Channels() int { return len(r.bufs) }

// Render produces the next block. The returned buffers are reused by the
// following call.
func (r *Renderer) Render() [][]float64 {
	r.gen.Fill(r.bufs[0])
	for ch := 1; ch < len(r.bufs); ch++ {
		copy(r.bufs[ch], r.bufs[0])
	}
	r.proc.Process(r.bufs)

	sum := 0.0
	for _, v := range r.bufs[0] {
		sum += v * v
	}
	r.level.Store(math.Float64bits(mathSqrt(sum / float64(len(r.bufs[0])))))
	r.blocks.Add(1)
	return r.bufs
}

// Blocks returns the number of rendered blocks.
func (r *Renderer) Blocks() uint64 { return r.blocks.Load() }

// Level returns the RMS of the last block of channel 0.
func (r *Renderer) Level() float64 { return math.Float64frombits(r.level.Load()) }

// Stream adapts a Renderer to an io.Reader of interleaved float32
// little-endian frames, the format the oto player consumes.
//
// The renderer is swapped through an atomic pointer so Read never locks; a
// nil renderer reads as silence.
type Stream struct {
	renderer atomic.Pointer[Renderer]

	block [][]float64
	pos   int
}

// NewStream returns a stream reading from r.
func NewStream(r *Renderer) *Stream {
	s := &Stream{}
	s.renderer.Store(r)
	return s
}

// SetRenderer swaps the source. Pass nil to mute.
func (s *Stream) SetRenderer(r *Renderer) {
	s.renderer.Store(r)
}

// Read fills p with whole frames. A trailing partial frame is zeroed.
func (s *Stream) Read(p []byte) (int, error) {
	r := s.renderer.Load()
	if r == nil {
		clear(p)
		return len(p), nil
	}

	channels := r.Channels()
	frameBytes := 4 * channels
	n := 0
	for n+frameBytes <= len(p) {
		if s.block == nil || s.pos >= len(s.block[0]) || len(s.block) != channels {
			s.block = r.Render()
			s.pos = 0
		}
		for ch := 0; ch < channels; ch++ {
			v := float32(s.block[ch][s.pos])
			binary.LittleEndian.PutUint32(p[n:], math.Float32bits(v))
			n += 4
		}
		s.pos++
	}
	clear(p[n:])
	return len(p), nil
}
