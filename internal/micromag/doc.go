// Package micromag provides the term algebra for micromagnetic models.
//
// A model is built from named terms, each belonging to one [Family]:
//
//   - [Term]: a single contribution with constrained parameters
//   - [TermSum]: an ordered collection of terms of one family, unique by name
//   - [Hamiltonian]: the energy functional, a sum of energy terms
//   - [Dynamics]: the equation of motion, a sum of dynamics terms
//   - [System]: a named pairing of a Hamiltonian and its Dynamics
//
// # Example
//
//	ex, _ := energy.NewExchange(1e-12)
//	z, _ := energy.NewZeeman([3]float64{0, 0, 1e6})
//	h, err := micromag.NewHamiltonian()
//	if err != nil {
//	    return err
//	}
//	if err := h.Add(ex, z); err != nil {
//	    // family mismatch or duplicate name; h is unchanged
//	}
//	fmt.Println(h.Latex())
//
// # Ownership
//
// A sum owns its members. [TermSum.Combine] clones the other sum's terms,
// so no term is reachable from two sums through Combine. Adding a term that
// already belongs to another sum fails with [ErrTermOwned]. Renaming a member
// through SetParam is checked against the other members of its sum.
//
// # Thread Safety
//
// Sums are NOT thread-safe. Callers sharing a sum serialize access themselves.
package micromag
