//go:build headless

package playback

// Oto is unavailable in headless builds.
type Oto struct{}

// NewOto always fails in headless builds.
func NewOto(r *Renderer, sampleRate int) (*Oto, error) {
	return nil, ErrAudioUnavailable
}

// Start implements Sink.
func (o *Oto) Start() error { return ErrAudioUnavailable }

// Close implements Sink.
func (o *Oto) Close() error { return nil }
