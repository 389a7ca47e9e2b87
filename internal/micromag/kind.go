package micromag

import (
	"maps"

	"github.com/san-kum/micromag/internal/typesystem"
)

// Kind describes how to build one concrete term type from loose parameters.
type Kind struct {
	Name     string
	Family   Family
	Schema   *typesystem.Schema
	Defaults map[string]any
	Build    func(Attrs) Term
}

// New validates defaults overlaid with params and builds a term.
func (k Kind) New(params map[string]any, opts ...Option) (Term, error) {
	values := maps.Clone(k.Defaults)
	if values == nil {
		values = make(map[string]any, len(params))
	}
	maps.Copy(values, params)
	attrs, err := NewAttrs(k.Schema, values, opts...)
	if err != nil {
		return nil, err
	}
	return k.Build(attrs), nil
}
