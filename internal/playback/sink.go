package playback

import (
	"errors"
	"sync"
	"time"
)

// ErrAudioUnavailable is returned when no audio device backend is compiled in.
var ErrAudioUnavailable = errors.New("playback: audio output not available in this build")

// Sink consumes rendered audio at the stream cadence.
type Sink interface {
	Start() error
	Close() error
}

// Headless drives a Renderer from a ticker at the block rate, discarding
// the output. It stands in for an audio device in tests and on machines
// without one.
type Headless struct {
	r        *Renderer
	interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	started bool
}

// NewHeadless returns a sink that renders one block every
// frames/sampleRate seconds.
func NewHeadless(r *Renderer, sampleRate float64) *Headless {
	interval := time.Duration(float64(r.Frames()) / sampleRate * float64(time.Second))
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Headless{r: r, interval: interval}
}

// Interval returns the block period.
func (h *Headless) Interval() time.Duration { return h.interval }

// Start begins rendering. Calling Start twice is a no-op.
func (h *Headless) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.started {
		return nil
	}
	h.stop = make(chan struct{})
	h.done = make(chan struct{})
	h.started = true

	go h.loop(h.stop, h.done)
	return nil
}

func (h *Headless) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.r.Render()
		}
	}
}

// Close stops rendering and waits for the loop to exit.
func (h *Headless) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.started {
		return nil
	}
	close(h.stop)
	<-h.done
	h.started = false
	return nil
}
