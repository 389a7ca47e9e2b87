// Package catalog maps kind names such as "exchange" or "damping" to the
// term types that implement them, so models can be assembled from data.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/micromag/internal/dynamics"
	"github.com/san-kum/micromag/internal/energy"
	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
)

var (
	// ErrUnknownKind indicates a kind name with no registered term type.
	ErrUnknownKind = errors.New("catalog: unknown term kind")

	// ErrKindExists indicates a second registration under the same name.
	ErrKindExists = errors.New("catalog: kind already registered")
)

// Registry maps kind names to the kinds that build them.
type Registry struct {
	kinds map[string]micromag.Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]micromag.Kind)}
}

// Default returns a registry holding every built-in energy and dynamics term.
func Default() *Registry {
	r := NewRegistry()
	for _, k := range energy.Kinds() {
		_ = r.Register(k)
	}
	for _, k := range dynamics.Kinds() {
		_ = r.Register(k)
	}
	return r
}

// Register adds k, failing with [ErrKindExists] if its name is taken.
func (r *Registry) Register(k micromag.Kind) error {
	if _, ok := r.kinds[k.Name]; ok {
		return fmt.Errorf("%w: %s", ErrKindExists, k.Name)
	}
	r.kinds[k.Name] = k
	return nil
}

// Lookup returns the kind registered as kind, or [ErrUnknownKind].
func (r *Registry) Lookup(kind string) (micromag.Kind, error) {
	k, ok := r.kinds[kind]
	if !ok {
		return micromag.Kind{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return k, nil
}

// KindOf finds the registered kind whose schema governs t.
func (r *Registry) KindOf(t micromag.Term) (micromag.Kind, error) {
	if s, ok := t.(interface{ Schema() *typesystem.Schema }); ok {
		for _, k := range r.kinds {
			if k.Schema == s.Schema() {
				return k, nil
			}
		}
	}
	return micromag.Kind{}, fmt.Errorf("%w: %s", ErrUnknownKind, t.Repr())
}

// Build constructs a term of kind. An empty name keeps the kind's default.
func (r *Registry) Build(kind, name string, params map[string]any) (micromag.Term, error) {
	k, err := r.Lookup(kind)
	if err != nil {
		return nil, err
	}
	var opts []micromag.Option
	if name != "" {
		opts = append(opts, micromag.WithName(name))
	}
	t, err := k.New(params, opts...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", kind, err)
	}
	return t, nil
}

// Kinds lists registered kinds sorted by family, then name.
func (r *Registry) Kinds() []micromag.Kind {
	out := make([]micromag.Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ListKinds returns the names of Kinds, in the same order.
func (r *Registry) ListKinds() []string {
	kinds := r.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name
	}
	return names
}
