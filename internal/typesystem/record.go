package typesystem

import (
	"maps"
	"slices"
)

// Record holds the attribute values of one instance of a schema.
type Record struct {
	schema *Schema
	values map[string]any
}

// NewRecord validates values against schema and returns a record holding
// them. Every governed attribute must be present. On any failure no record
// is returned.
func NewRecord(schema *Schema, values map[string]any) (*Record, error) {
	stored := make(map[string]any, len(schema.attrs))
	for _, attr := range slices.Sorted(maps.Keys(values)) {
		if !schema.Governs(attr) {
			return nil, &AttributeError{Owner: schema.owner, Attribute: attr, Wrapped: ErrUnknownAttribute}
		}
	}
	for _, attr := range schema.attrs {
		v, ok := values[attr]
		if !ok {
			return nil, &AttributeError{Owner: schema.owner, Attribute: attr, Wrapped: ErrMissingAttribute}
		}
		c, err := schema.Validate(attr, v)
		if err != nil {
			return nil, err
		}
		stored[attr] = c
	}
	return &Record{schema: schema, values: stored}, nil
}

// Schema returns the constraint table governing r.
func (r *Record) Schema() *Schema { return r.schema }

// Set stores v under attr if every constraint admits it. On error the
// previous value is kept.
func (r *Record) Set(attr string, v any) error {
	c, err := r.schema.Validate(attr, v)
	if err != nil {
		return err
	}
	r.values[attr] = c
	return nil
}

// Get returns the stored value of attr.
func (r *Record) Get(attr string) (any, bool) {
	v, ok := r.values[attr]
	return v, ok
}

// Float returns attr as a real number, or 0 if it does not hold one.
func (r *Record) Float(attr string) float64 {
	f, _ := AsReal(r.values[attr])
	return f
}

// Text returns attr as a string, or "" if it does not hold one.
func (r *Record) Text(attr string) string {
	s, _ := r.values[attr].(string)
	return s
}

// Vector returns attr as three components.
func (r *Record) Vector(attr string) [3]float64 {
	v, _ := AsVector(r.values[attr])
	return v
}

// Values returns a copy of every stored value.
func (r *Record) Values() map[string]any {
	return maps.Clone(r.values)
}

// Clone returns an independent record with the same schema and values.
// Stored values are canonical and therefore copied by value.
func (r *Record) Clone() *Record {
	return &Record{schema: r.schema, values: maps.Clone(r.values)}
}
