package typesystem

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation indicates a value outside an attribute's declared domain.
	ErrConstraintViolation = errors.New("typesystem: constraint violation")

	// ErrUnknownAttribute indicates a write to an attribute the schema does not declare.
	ErrUnknownAttribute = errors.New("typesystem: unknown attribute")

	// ErrMissingAttribute indicates a declared attribute left unset at construction.
	ErrMissingAttribute = errors.New("typesystem: missing attribute")
)

// ConstraintViolation reports which attribute rejected which value.
type ConstraintViolation struct {
	Owner     string
	Attribute string
	Value     any
	Expected  string
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s.%s: cannot set %#v, expected %s", e.Owner, e.Attribute, e.Value, e.Expected)
}

func (e *ConstraintViolation) Unwrap() error {
	return ErrConstraintViolation
}

// AttributeError wraps ErrUnknownAttribute or ErrMissingAttribute.
type AttributeError struct {
	Owner     string
	Attribute string
	Wrapped   error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Owner, e.Attribute, e.Wrapped)
}

func (e *AttributeError) Unwrap() error {
	return e.Wrapped
}
