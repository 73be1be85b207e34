package rawtext

import (
	"fmt"
	"sort"
	"sync"
)

// A Factory builds an output module writing to the given sink.
type Factory func(sink Sink) (*OutputModule, error)

// A Registry maps output format names to module factories. It is the
// discovery point a host framework uses to instantiate modules by name, and
// is safe for concurrent use.
type Registry struct {
	l         sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under a format name. Duplicate names are an
// error.
func (r *Registry) Register(name string, f Factory) error {
	const op = "rawtext.(Registry).Register"
	if name == "" {
		return fmt.Errorf("%s: missing format name", op)
	}
	if f == nil {
		return fmt.Errorf("%s: missing factory", op)
	}

	r.l.Lock()
	defer r.l.Unlock()

	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%s: format %q already registered", op, name)
	}
	r.factories[name] = f
	return nil
}

// NewModule instantiates the module registered under name, writing to sink.
func (r *Registry) NewModule(name string, sink Sink) (*OutputModule, error) {
	const op = "rawtext.(Registry).NewModule"

	r.l.RLock()
	f, ok := r.factories[name]
	r.l.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%s: unknown format %q", op, name)
	}
	return f(sink)
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	r.l.RLock()
	defer r.l.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry has the built in format registered.
var DefaultRegistry = func() *Registry {
	r := NewRegistry()
	err := r.Register(FormatName, func(sink Sink) (*OutputModule, error) {
		return NewOutputModule(sink, nil)
	})
	if err != nil {
		panic(err)
	}
	return r
}()
