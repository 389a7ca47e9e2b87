package typesystem

import (
	"slices"
	"sort"
)

// Fields maps attribute names to the descriptor governing them.
type Fields map[string]Descriptor

// Constraint binds a descriptor to an attribute on the schema that declared it.
type Constraint struct {
	Owner      string
	Attribute  string
	Descriptor Descriptor
}

// Schema is the constraint table of one type. A schema and everything
// reachable from it is immutable once declared.
type Schema struct {
	owner  string
	parent *Schema
	attrs  []string
	table  map[string][]Constraint
}

// Declare builds a root schema for owner.
func Declare(owner string, fields Fields) *Schema {
	return (*Schema)(nil).Extend(owner, fields)
}

// Extend derives a schema for owner that carries every constraint of s
// plus fields. A field already governed by s keeps its inherited
// predicates and gains the new one.
func (s *Schema) Extend(owner string, fields Fields) *Schema {
	child := &Schema{
		owner:  owner,
		parent: s,
		table:  make(map[string][]Constraint),
	}
	if s != nil {
		child.attrs = slices.Clone(s.attrs)
		for attr, cs := range s.table {
			child.table[attr] = slices.Clone(cs)
		}
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, inherited := child.table[name]; !inherited {
			child.attrs = append(child.attrs, name)
		}
		child.table[name] = append(child.table[name], Constraint{
			Owner:      owner,
			Attribute:  name,
			Descriptor: fields[name],
		})
	}
	return child
}

// Owner returns the name the schema was declared for.
func (s *Schema) Owner() string { return s.owner }

// Parent returns the schema s was extended from, or nil for a root schema.
func (s *Schema) Parent() *Schema { return s.parent }

// Attributes lists governed attributes, base declarations first.
func (s *Schema) Attributes() []string {
	return slices.Clone(s.attrs)
}

// Governs reports whether attr is declared on s or an ancestor.
func (s *Schema) Governs(attr string) bool {
	_, ok := s.table[attr]
	return ok
}

// Constraints returns every constraint on attr, inherited ones first.
func (s *Schema) Constraints(attr string) []Constraint {
	return slices.Clone(s.table[attr])
}

// Validate checks v against every constraint on attr and returns the
// canonical form to store.
func (s *Schema) Validate(attr string, v any) (any, error) {
	cs, ok := s.table[attr]
	if !ok {
		return nil, &AttributeError{Owner: s.owner, Attribute: attr, Wrapped: ErrUnknownAttribute}
	}
	for _, c := range cs {
		if !c.Descriptor.Admits(v) {
			return nil, &ConstraintViolation{
				Owner:     s.owner,
				Attribute: attr,
				Value:     v,
				Expected:  c.Descriptor.Expected,
			}
		}
	}
	for _, c := range cs {
		if c.Descriptor.Canonical != nil {
			return c.Descriptor.canonical(v), nil
		}
	}
	return v, nil
}
