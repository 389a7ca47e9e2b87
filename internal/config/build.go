package config

import (
	"fmt"

	"github.com/san-kum/micromag/internal/catalog"
	"github.com/san-kum/micromag/internal/logger"
	"github.com/san-kum/micromag/internal/micromag"
)

// Build assembles the system described by m.
func (m *Model) Build(reg *catalog.Registry, log *logger.Logger) (*micromag.System, error) {
	sys, err := micromag.NewSystem(m.Name)
	if err != nil {
		return nil, err
	}
	log = log.With("system", m.Name)

	if err := addTerms(reg, log, sys.Hamiltonian.TermSum, m.Hamiltonian); err != nil {
		return nil, fmt.Errorf("hamiltonian: %w", err)
	}
	if err := addTerms(reg, log, sys.Dynamics.TermSum, m.Dynamics); err != nil {
		return nil, fmt.Errorf("dynamics: %w", err)
	}
	return sys, nil
}

func addTerms(reg *catalog.Registry, log *logger.Logger, sum *micromag.TermSum, specs []TermSpec) error {
	for i, spec := range specs {
		t, err := reg.Build(spec.Kind, spec.Name, spec.Params)
		if err != nil {
			return fmt.Errorf("term %d: %w", i, err)
		}
		if err := sum.Add(t); err != nil {
			return fmt.Errorf("term %d: %w", i, err)
		}
		log.Debug("term added", "family", sum.Family(), "kind", spec.Kind, "name", t.Name())
	}
	return nil
}

// FromSystem describes sys as a model file. Terms must come from kinds
// registered in reg.
func FromSystem(reg *catalog.Registry, sys *micromag.System) (*Model, error) {
	m := &Model{Name: sys.Name()}
	var err error
	if m.Hamiltonian, err = specsOf(reg, sys.Hamiltonian.TermSum); err != nil {
		return nil, err
	}
	if m.Dynamics, err = specsOf(reg, sys.Dynamics.TermSum); err != nil {
		return nil, err
	}
	return m, nil
}

func specsOf(reg *catalog.Registry, sum *micromag.TermSum) ([]TermSpec, error) {
	specs := make([]TermSpec, 0, sum.Len())
	for t := range sum.All() {
		k, err := reg.KindOf(t)
		if err != nil {
			return nil, err
		}
		spec := TermSpec{Kind: k.Name, Name: t.Name()}
		if c, ok := t.(micromag.Configurable); ok {
			for _, p := range c.ParamNames() {
				if p == "name" {
					continue
				}
				v, _ := c.Param(p)
				if vec, ok := v.([3]float64); ok {
					v = vec[:]
				}
				if spec.Params == nil {
					spec.Params = make(map[string]any)
				}
				spec.Params[p] = v
			}
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
