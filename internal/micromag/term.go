package micromag

import (
	"strconv"
	"strings"

	"github.com/san-kum/micromag/internal/typesystem"
)

// Family classifies what a term contributes to.
type Family int

const (
	FamilyEnergy Family = iota + 1
	FamilyDynamics
)

func (f Family) String() string {
	switch f {
	case FamilyEnergy:
		return "energy"
	case FamilyDynamics:
		return "dynamics"
	default:
		return "unknown"
	}
}

// Term is a single named physical contribution.
type Term interface {
	Name() string
	Family() Family
	// Latex is the symbolic rendering, delimited by $.
	Latex() string
	Repr() string
	Clone() Term
}

// EnergyTerm is satisfied only by types embedding [EnergyMarker].
type EnergyTerm interface {
	Term
	energyTerm()
}

// DynamicsTerm is satisfied only by types embedding [DynamicsMarker].
type DynamicsTerm interface {
	Term
	dynamicsTerm()
}

// EnergyMarker tags a term as a member of the energy family.
type EnergyMarker struct{}

func (EnergyMarker) Family() Family { return FamilyEnergy }
func (EnergyMarker) energyTerm()    {}

// DynamicsMarker tags a term as a member of the dynamics family.
type DynamicsMarker struct{}

func (DynamicsMarker) Family() Family { return FamilyDynamics }
func (DynamicsMarker) dynamicsTerm()  {}

// Configurable exposes a term's parameters to solvers and editors.
type Configurable interface {
	Param(name string) (any, bool)
	SetParam(name string, value any) error
	ParamNames() []string
}

// TermSchema governs the attributes shared by every term.
var TermSchema = typesystem.Declare("Term", typesystem.Fields{
	"name": typesystem.String,
})

// Option adjusts the initial attribute values of a term before validation.
type Option func(values map[string]any)

// WithName overrides a term's default name.
func WithName(name string) Option {
	return func(values map[string]any) {
		values["name"] = name
	}
}

// WithParam sets an arbitrary initial attribute value.
func WithParam(attr string, value any) Option {
	return func(values map[string]any) {
		values[attr] = value
	}
}

// Attrs stores a term's parameters in a constraint-checked record.
// Concrete terms embed it to get Name and [Configurable].
type Attrs struct {
	rec    *typesystem.Record
	member *membership
}

// membership records the sum a term currently belongs to.
type membership struct {
	sum *TermSum
}

func (a Attrs) membership() *membership { return a.member }

// NewAttrs applies opts over values and validates the result against schema.
func NewAttrs(schema *typesystem.Schema, values map[string]any, opts ...Option) (Attrs, error) {
	merged := make(map[string]any, len(values)+1)
	for k, v := range values {
		merged[k] = v
	}
	for _, opt := range opts {
		opt(merged)
	}
	rec, err := typesystem.NewRecord(schema, merged)
	if err != nil {
		return Attrs{}, err
	}
	return Attrs{rec: rec, member: &membership{}}, nil
}

func (a Attrs) Name() string { return a.rec.Text("name") }

func (a Attrs) Param(name string) (any, bool) { return a.rec.Get(name) }

// SetParam stores value under name if its constraints admit it. A term
// that belongs to a sum cannot take a name already used by another member.
func (a Attrs) SetParam(name string, value any) error {
	if name == "name" && a.member != nil && a.member.sum != nil {
		c, err := a.rec.Schema().Validate(name, value)
		if err != nil {
			return err
		}
		if s, ok := c.(string); ok && s != a.Name() && a.member.sum.Contains(s) {
			return &DuplicateTermError{Name: s}
		}
	}
	return a.rec.Set(name, value)
}

func (a Attrs) ParamNames() []string { return a.rec.Schema().Attributes() }

// Params returns a copy of every parameter value, name included.
func (a Attrs) Params() map[string]any { return a.rec.Values() }

// Schema returns the constraint table of the term.
func (a Attrs) Schema() *typesystem.Schema { return a.rec.Schema() }

func (a Attrs) Float(name string) float64 { return a.rec.Float(name) }

func (a Attrs) Text(name string) string { return a.rec.Text(name) }

func (a Attrs) Vector(name string) [3]float64 { return a.rec.Vector(name) }

// CloneAttrs returns an independent copy that belongs to no sum.
func (a Attrs) CloneAttrs() Attrs {
	return Attrs{rec: a.rec.Clone(), member: &membership{}}
}

// FormatValue renders a stored parameter value for a repr string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case [3]float64:
		parts := make([]string, 3)
		for i, c := range x {
			parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case string:
		return "'" + x + "'"
	default:
		if f, ok := typesystem.AsReal(v); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return "?"
	}
}
