package micromag

import (
	"errors"
	"fmt"
)

// Domain errors for term algebra operations.
var (
	// ErrFamilyMismatch indicates a term offered to a sum of another family.
	ErrFamilyMismatch = errors.New("micromag: term family not accepted")

	// ErrDuplicateTerm indicates a term whose name is already taken in the sum.
	ErrDuplicateTerm = errors.New("micromag: duplicate term name")

	// ErrNotFound indicates a removal of a term that is not a member.
	ErrNotFound = errors.New("micromag: term not found")

	// ErrNilTerm indicates a nil term, or a nil pointer to a term, passed to a sum.
	ErrNilTerm = errors.New("micromag: nil term")

	// ErrTermOwned indicates a term that already belongs to another sum.
	ErrTermOwned = errors.New("micromag: term belongs to another sum")
)

// FamilyMismatchError reports a term rejected by a sum's capability check.
type FamilyMismatchError struct {
	Term     string
	Got      Family
	Accepted Family
}

func (e *FamilyMismatchError) Error() string {
	return fmt.Sprintf("only %s terms may be added, %q is a %s term", e.Accepted, e.Term, e.Got)
}

func (e *FamilyMismatchError) Unwrap() error {
	return ErrFamilyMismatch
}

// DuplicateTermError reports the name that collided.
type DuplicateTermError struct {
	Name string
}

func (e *DuplicateTermError) Error() string {
	return fmt.Sprintf("term %q already present", e.Name)
}

func (e *DuplicateTermError) Unwrap() error {
	return ErrDuplicateTerm
}

// NotFoundError reports the name looked up on removal.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("term %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
