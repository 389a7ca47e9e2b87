package micromag

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// TermSum is an ordered collection of terms of one accepted family.
// Member names are unique. Every mutation is atomic: it is applied in full
// or rejected with the sum unchanged.
type TermSum struct {
	family Family
	terms  []Term
}

// NewTermSum returns an empty sum accepting terms of family.
func NewTermSum(family Family) *TermSum {
	return &TermSum{family: family}
}

// Family returns the family the sum accepts.
func (s *TermSum) Family() Family { return s.family }

// Add appends terms in order. The whole call is rejected if any term is
// nil, of another family, or named like a member or another argument.
func (s *TermSum) Add(terms ...Term) error {
	if err := s.admit(terms); err != nil {
		return err
	}
	for _, t := range terms {
		if m := membershipOf(t); m != nil {
			m.sum = s
		}
	}
	s.terms = append(s.terms, terms...)
	return nil
}

// Plus adds terms and returns the receiver, for chaining.
func (s *TermSum) Plus(terms ...Term) (*TermSum, error) {
	if err := s.Add(terms...); err != nil {
		return s, err
	}
	return s, nil
}

// Combine adds clones of every member of other.
func (s *TermSum) Combine(other *TermSum) error {
	if other == nil {
		return nil
	}
	clones := make([]Term, len(other.terms))
	for i, t := range other.terms {
		clones[i] = t.Clone()
	}
	return s.Add(clones...)
}

// Remove drops the member identical to t.
func (s *TermSum) Remove(t Term) error {
	if isNil(t) {
		return ErrNilTerm
	}
	i := slices.IndexFunc(s.terms, func(m Term) bool { return m == t })
	if i < 0 {
		return &NotFoundError{Name: t.Name()}
	}
	s.drop(i)
	return nil
}

// RemoveName drops the member called name.
func (s *TermSum) RemoveName(name string) error {
	i := s.index(name)
	if i < 0 {
		return &NotFoundError{Name: name}
	}
	s.drop(i)
	return nil
}

// Minus removes t and returns the receiver, for chaining.
func (s *TermSum) Minus(t Term) (*TermSum, error) {
	if err := s.Remove(t); err != nil {
		return s, err
	}
	return s, nil
}

// All iterates over members in insertion order.
func (s *TermSum) All() iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for _, t := range s.terms {
			if !yield(t) {
				return
			}
		}
	}
}

// Terms returns a copy of the member list.
func (s *TermSum) Terms() []Term {
	return slices.Clone(s.terms)
}

func (s *TermSum) Len() int { return len(s.terms) }

// Get returns the member called name.
func (s *TermSum) Get(name string) (Term, bool) {
	i := s.index(name)
	if i < 0 {
		return nil, false
	}
	return s.terms[i], true
}

func (s *TermSum) Contains(name string) bool { return s.index(name) >= 0 }

// Names lists member names in insertion order.
func (s *TermSum) Names() []string {
	names := make([]string, len(s.terms))
	for i, t := range s.terms {
		names[i] = t.Name()
	}
	return names
}

// Latex joins member renderings with + inside a single pair of $.
func (s *TermSum) Latex() string {
	if len(s.terms) == 0 {
		return "$0$"
	}
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = strings.Trim(t.Latex(), "$")
	}
	return "$" + strings.Join(parts, " + ") + "$"
}

// Repr lists member reprs joined by +.
func (s *TermSum) Repr() string {
	if len(s.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.Repr()
	}
	return strings.Join(parts, " + ")
}

func (s *TermSum) String() string { return s.Repr() }

// Equal reports whether both sums accept the same family and hold the same
// named terms with the same reprs, regardless of order. The comparison is
// symmetric even when a member was renamed onto another member's name.
func (s *TermSum) Equal(other *TermSum) bool {
	if other == nil || s.family != other.family || len(s.terms) != len(other.terms) {
		return false
	}
	return slices.Equal(s.entries(), other.entries())
}

// entries returns name/repr pairs sorted by name, then repr.
func (s *TermSum) entries() []entry {
	es := make([]entry, len(s.terms))
	for i, t := range s.terms {
		es[i] = entry{name: t.Name(), repr: t.Repr()}
	}
	slices.SortFunc(es, func(a, b entry) int {
		if c := strings.Compare(a.name, b.name); c != 0 {
			return c
		}
		return strings.Compare(a.repr, b.repr)
	})
	return es
}

type entry struct {
	name, repr string
}

func (s *TermSum) index(name string) int {
	return slices.IndexFunc(s.terms, func(t Term) bool { return t.Name() == name })
}

func (s *TermSum) drop(i int) {
	if m := membershipOf(s.terms[i]); m != nil && m.sum == s {
		m.sum = nil
	}
	s.terms = slices.Delete(s.terms, i, i+1)
}

func (s *TermSum) admit(terms []Term) error {
	seen := make(map[string]struct{}, len(s.terms)+len(terms))
	for _, t := range s.terms {
		seen[t.Name()] = struct{}{}
	}
	for _, t := range terms {
		if isNil(t) {
			return ErrNilTerm
		}
		if m := membershipOf(t); m != nil && m.sum != nil {
			if m.sum == s {
				return &DuplicateTermError{Name: t.Name()}
			}
			return fmt.Errorf("%w: %q", ErrTermOwned, t.Name())
		}
		if t.Family() != s.family {
			return &FamilyMismatchError{Term: t.Name(), Got: t.Family(), Accepted: s.family}
		}
		if _, dup := seen[t.Name()]; dup {
			return &DuplicateTermError{Name: t.Name()}
		}
		seen[t.Name()] = struct{}{}
	}
	return nil
}

// membershipOf returns the membership slot of terms built on [Attrs].
func membershipOf(t Term) *membership {
	if m, ok := t.(interface{ membership() *membership }); ok {
		return m.membership()
	}
	return nil
}

// isNil reports an untyped nil or a nil pointer wrapped in a Term.
func isNil(t Term) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
