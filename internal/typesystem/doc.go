// Package typesystem enforces domain constraints on named attributes.
//
// A [Schema] is an explicit constraint table: attribute name to one or more
// [Descriptor] predicates. Instances hold their values in a [Record], and
// every write, including the initial one, passes through the same checking
// path:
//
//	schema := typesystem.Declare("Damping", typesystem.Fields{
//	    "alpha": typesystem.UnsignedReal,
//	    "name":  typesystem.String,
//	})
//	rec, err := typesystem.NewRecord(schema, map[string]any{"alpha": 0.5, "name": "damping"})
//	err = rec.Set("alpha", -0.1) // *ConstraintViolation, alpha is still 0.5
//
// # Inheritance
//
// [Schema.Extend] derives a schema from a base. Inherited constraints always
// apply; redeclaring an attribute adds a predicate rather than replacing one.
//
// # Thread Safety
//
// Records are NOT thread-safe. Schemas are immutable once declared.
package typesystem
