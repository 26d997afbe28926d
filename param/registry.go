package param

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownParameter is returned for IDs or names that are not registered.
var ErrUnknownParameter = errors.New("param: unknown parameter")

// Listener receives the registry index and new plain value of a changed
// parameter. It runs on the goroutine that made the change.
type Listener func(index int, value float64)

// Registry holds parameters in registration order.
//
// The mutex guards the parameter table and the listener set. Values are
// read through the parameters' atomics.
type Registry struct {
	mu        sync.RWMutex
	params    map[uint32]*Parameter
	order     []uint32
	listeners map[int]Listener
	nextID    int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		params:    make(map[uint32]*Parameter),
		listeners: make(map[int]Listener),
	}
}

// Add registers parameters. Duplicate IDs are skipped.
func (r *Registry) Add(params ...*Parameter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if _, exists := r.params[p.ID]; exists {
			continue
		}
		r.params[p.ID] = p
		r.order = append(r.order, p.ID)
	}
}

// Get returns the parameter with id, or nil.
func (r *Registry) Get(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.params[id]
}

// ByName returns the parameter called name, or nil.
func (r *Registry) ByName(name string) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.params[id]; p.Name == name {
			return p
		}
	}
	return nil
}

// Index returns the registration index of id, or -1.
func (r *Registry) Index(id uint32) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.indexLocked(id)
}

func (r *Registry) indexLocked(id uint32) int {
	for i, v := range r.order {
		if v == id {
			return i
		}
	}
	return -1
}

// Count returns the number of parameters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// All returns all parameters in order.
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, len(r.order))
	for i, id := range r.order {
		result[i] = r.params[id]
	}
	return result
}

// PlainValue returns the current plain value of id, or 0 if unknown.
func (r *Registry) PlainValue(id uint32) float64 {
	if p := r.Get(id); p != nil {
		return p.Plain()
	}
	return 0
}

// Set stores a plain value and notifies listeners.
func (r *Registry) Set(id uint32, plain float64) error {
	r.mu.RLock()
	p := r.params[id]
	index := r.indexLocked(id)
	r.mu.RUnlock()

	if p == nil {
		return fmt.Errorf("%w: id %d", ErrUnknownParameter, id)
	}

	r.notify(index, p.SetPlain(plain))
	return nil
}

// SetNormalized stores a [0, 1] value and notifies listeners.
func (r *Registry) SetNormalized(id uint32, n float64) error {
	p := r.Get(id)
	if p == nil {
		return fmt.Errorf("%w: id %d", ErrUnknownParameter, id)
	}
	return r.Set(id, p.Denormalize(n))
}

// AddListener registers l and returns a handle for RemoveListener.
func (r *Registry) AddListener(l Listener) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = l
	return id
}

// RemoveListener unregisters the listener with handle id.
func (r *Registry) RemoveListener(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listeners, id)
}

func (r *Registry) notify(index int, value float64) {
	r.mu.RLock()
	handles := make([]int, 0, len(r.listeners))
	for h := range r.listeners {
		handles = append(handles, h)
	}
	sort.Ints(handles)
	ls := make([]Listener, len(handles))
	for i, h := range handles {
		ls[i] = r.listeners[h]
	}
	r.mu.RUnlock()

	for _, l := range ls {
		l(index, value)
	}
}

// Snapshot returns the current plain values keyed by name.
func (r *Registry) Snapshot() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]float64, len(r.order))
	for _, id := range r.order {
		p := r.params[id]
		out[p.Name] = p.Plain()
	}
	return out
}

// Restore sets every named value in values. Unknown names are reported
// after all known ones have been applied.
func (r *Registry) Restore(values map[string]float64) error {
	var errs []error
	for _, p := range r.All() {
		v, ok := values[p.Name]
		if !ok {
			continue
		}
		if err := r.Set(p.ID, v); err != nil {
			errs = append(errs, err)
		}
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if r.ByName(name) == nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownParameter, name))
		}
	}
	return errors.Join(errs...)
}

// ResetAll restores every default and notifies listeners.
func (r *Registry) ResetAll() {
	for _, p := range r.All() {
		_ = r.Set(p.ID, p.Default)
	}
}
