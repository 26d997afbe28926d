//go:build !headless

package playback

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Oto plays a Stream on the system audio device.
type Oto struct {
	ctx    *oto.Context
	player *oto.Player
	stream *Stream

	mu      sync.Mutex // Only for setup/control operations
	started bool
}

// NewOto opens the audio device for r's channel layout at sampleRate.
func NewOto(r *Renderer, sampleRate int) (*Oto, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: r.Channels(),
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("playback: open audio device: %w", err)
	}
	<-ready

	stream := NewStream(r)
	return &Oto{
		ctx:    ctx,
		stream: stream,
		player: ctx.NewPlayer(stream),
	}, nil
}

// Start begins playback.
func (o *Oto) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.started || o.player == nil {
		return nil
	}
	o.player.Play()
	o.started = true
	return nil
}

// Close stops playback and releases the player.
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == nil {
		return nil
	}
	o.stream.SetRenderer(nil)
	err := o.player.Close()
	o.player = nil
	o.started = false
	return err
}
