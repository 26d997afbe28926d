package eq

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultPollInterval is the control-actor timer period.
const DefaultPollInterval = 60 * time.Millisecond

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogf sets a printf-style diagnostic sink.
func WithLogf(logf func(format string, args ...any)) ControllerOption {
	return func(c *Controller) {
		if logf != nil {
			c.logf = logf
		}
	}
}

// WithOnRebuild sets a hook called after every rebuild, e.g. to repaint.
func WithOnRebuild(fn func(ChainSettings)) ControllerOption {
	return func(c *Controller) {
		c.onRebuild = fn
	}
}

// Controller is the control actor. Parameter notifications set a dirty flag;
// Poll clears it once and rebuilds the chain from a fresh snapshot, so any
// burst of changes between two polls costs a single rebuild.
type Controller struct {
	src  ValueSource
	proc *Processor

	dirty    atomic.Bool
	rebuilds atomic.Uint64
	settings atomic.Pointer[ChainSettings]

	logf      func(format string, args ...any)
	onRebuild func(ChainSettings)
}

// NewController reads the initial snapshot from src and installs it.
func NewController(src ValueSource, proc *Processor, opts ...ControllerOption) *Controller {
	c := &Controller{
		src:  src,
		proc: proc,
		logf: func(string, ...any) {},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	s := SettingsFrom(src)
	c.settings.Store(&s)
	proc.Update(s)
	return c
}

// ParameterChanged marks the settings dirty. It matches [param.Listener].
func (c *Controller) ParameterChanged(index int, value float64) {
	c.dirty.Store(true)
}

// Dirty reports whether a change is pending.
func (c *Controller) Dirty() bool { return c.dirty.Load() }

// Poll rebuilds the chain if a change is pending and reports whether it did.
func (c *Controller) Poll() bool {
	if !c.dirty.CompareAndSwap(true, false) {
		return false
	}

	s := SettingsFrom(c.src)
	c.proc.Update(s)
	c.settings.Store(&s)
	n := c.rebuilds.Add(1)
	c.logf("eq: rebuild %d: %+v", n, s)

	if c.onRebuild != nil {
		c.onRebuild(s)
	}
	return true
}

// Run polls every interval until ctx is done. A non-positive interval uses
// DefaultPollInterval.
func (c *Controller) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Poll()
		}
	}
}

// Rebuilds returns the number of rebuilds performed by Poll.
func (c *Controller) Rebuilds() uint64 { return c.rebuilds.Load() }

// Settings returns the last installed snapshot.
func (c *Controller) Settings() ChainSettings { return *c.settings.Load() }
