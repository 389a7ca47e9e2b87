package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Model is the on-disk description of a micromagnetic system.
type Model struct {
	Name        string     `yaml:"name" validate:"required"`
	Hamiltonian []TermSpec `yaml:"hamiltonian" validate:"dive"`
	Dynamics    []TermSpec `yaml:"dynamics" validate:"dive"`
}

// TermSpec names a catalog kind and its parameters. An empty Name keeps the
// kind's default name.
type TermSpec struct {
	Kind   string         `yaml:"kind" validate:"required"`
	Name   string         `yaml:"name,omitempty"`
	Params map[string]any `yaml:"params,omitempty"`
}

func (m *Model) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}
	return nil
}

// Parse decodes and validates a YAML model.
func Parse(data []byte) (*Model, error) {
	m := &Model{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads and validates the YAML model at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Save writes m to path as YAML.
func Save(path string, m *Model) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
