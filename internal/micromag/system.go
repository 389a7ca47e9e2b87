package micromag

import (
	"fmt"

	"github.com/san-kum/micromag/internal/typesystem"
)

var systemSchema = typesystem.Declare("System", typesystem.Fields{
	"name": typesystem.String,
})

// System pairs a Hamiltonian with the Dynamics that evolves it.
type System struct {
	attrs       *typesystem.Record
	Hamiltonian *Hamiltonian
	Dynamics    *Dynamics
}

// NewSystem returns an empty system called name.
func NewSystem(name string) (*System, error) {
	rec, err := typesystem.NewRecord(systemSchema, map[string]any{"name": name})
	if err != nil {
		return nil, err
	}
	h, _ := NewHamiltonian()
	d, _ := NewDynamics()
	return &System{attrs: rec, Hamiltonian: h, Dynamics: d}, nil
}

func (s *System) Name() string { return s.attrs.Text("name") }

// Rename changes the system name, subject to its constraint.
func (s *System) Rename(name string) error {
	return s.attrs.Set("name", name)
}

// Latex renders both sums on separate lines.
func (s *System) Latex() string {
	return fmt.Sprintf("H = %s\ndm/dt = %s", s.Hamiltonian.Latex(), s.Dynamics.Latex())
}

func (s *System) Repr() string {
	return fmt.Sprintf("System(name='%s', hamiltonian=%s, dynamics=%s)",
		s.Name(), s.Hamiltonian.Repr(), s.Dynamics.Repr())
}

func (s *System) String() string { return s.Repr() }
