// Package plugin keeps named callables for lookup by name.
package plugin

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-leo/decorators/endpoint"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Plugin is anything with a name; endpoints qualify.
type Plugin = endpoint.Named

// Registry maps plugin names to plugins. A later registration under the same
// name replaces the earlier one; nothing is ever removed.
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register stores p under its name.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return ErrPluginNil
	}
	name := p.Info().Name
	if name == "" {
		return ErrNameEmpty
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[name] = p
	return nil
}

// Get returns the plugin registered under name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := maps.Keys(r.plugins)
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// Snapshot returns a copy of the name to plugin mapping.
func (r *Registry) Snapshot() map[string]Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.plugins)
}

// Lookup returns the plugin registered under name as an endpoint with the
// given signature.
func Lookup[Req any, Resp any](r *Registry, name string) (endpoint.Endpoint[Req, Resp], error) {
	p, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnregistered, name)
	}
	ep, ok := p.(endpoint.Endpoint[Req, Resp])
	if !ok {
		return nil, TypeError{Name: name, Plugin: p}
	}
	return ep, nil
}

// Call looks up the plugin registered under name and invokes it with req.
func Call[Req any, Resp any](ctx context.Context, r *Registry, name string, req Req) (Resp, error) {
	ep, err := Lookup[Req, Resp](r, name)
	if err != nil {
		var resp Resp
		return resp, err
	}
	return ep.Invoke(ctx, req)
}
