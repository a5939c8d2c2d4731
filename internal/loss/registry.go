package loss

import (
	"fmt"
	"sort"
)

// Factory builds a layer from an execution config.
type Factory func(cfg Config) Layer

// Registry maps layer type names to factories.
//
// Register is not safe for concurrent use with New; register custom layers
// during program initialization.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a registry holding the built-in loss layers.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
	}

	r.Register(RelevantLossType, func(cfg Config) Layer { return NewRelevantLoss(cfg) })
	r.Register(EuclideanLossType, func(cfg Config) Layer { return NewEuclideanLoss(cfg) })

	return r
}

// DefaultRegistry is the registry consulted by configuration loaders.
var DefaultRegistry = NewRegistry()

// Register adds or replaces a factory.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// New builds the layer registered under name.
func (r *Registry) New(name string, cfg Config) (Layer, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	return factory(cfg), nil
}

// Types returns the registered names in sorted order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
