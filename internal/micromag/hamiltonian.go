package micromag

// Hamiltonian is the energy functional: a sum of energy terms.
type Hamiltonian struct {
	*TermSum
}

// NewHamiltonian returns a Hamiltonian holding terms, or an error if any
// of them collide by name.
func NewHamiltonian(terms ...EnergyTerm) (*Hamiltonian, error) {
	h := &Hamiltonian{TermSum: NewTermSum(FamilyEnergy)}
	if err := h.Add(terms...); err != nil {
		return nil, err
	}
	return h, nil
}

// Add appends energy terms.
func (h *Hamiltonian) Add(terms ...EnergyTerm) error {
	return h.TermSum.Add(energyTerms(terms)...)
}

// AddTerm appends terms whose family is only known at run time.
func (h *Hamiltonian) AddTerm(terms ...Term) error {
	return h.TermSum.Add(terms...)
}

// Plus adds terms and returns h.
func (h *Hamiltonian) Plus(terms ...EnergyTerm) (*Hamiltonian, error) {
	return h, h.Add(terms...)
}

// Minus removes t and returns h.
func (h *Hamiltonian) Minus(t EnergyTerm) (*Hamiltonian, error) {
	return h, h.Remove(t)
}

// Combine adds clones of every term of other.
func (h *Hamiltonian) Combine(other *Hamiltonian) error {
	if other == nil {
		return nil
	}
	return h.TermSum.Combine(other.TermSum)
}

// Equal reports whether h and other hold the same terms.
func (h *Hamiltonian) Equal(other *Hamiltonian) bool {
	if other == nil {
		return false
	}
	return h.TermSum.Equal(other.TermSum)
}

// Dynamics is the equation of motion: a sum of dynamics terms.
type Dynamics struct {
	*TermSum
}

// NewDynamics returns Dynamics holding terms, or an error if any of them
// collide by name.
func NewDynamics(terms ...DynamicsTerm) (*Dynamics, error) {
	d := &Dynamics{TermSum: NewTermSum(FamilyDynamics)}
	if err := d.Add(terms...); err != nil {
		return nil, err
	}
	return d, nil
}

// Add appends dynamics terms.
func (d *Dynamics) Add(terms ...DynamicsTerm) error {
	return d.TermSum.Add(dynamicsTerms(terms)...)
}

// AddTerm appends terms whose family is only known at run time.
func (d *Dynamics) AddTerm(terms ...Term) error {
	return d.TermSum.Add(terms...)
}

// Plus adds terms and returns d.
func (d *Dynamics) Plus(terms ...DynamicsTerm) (*Dynamics, error) {
	return d, d.Add(terms...)
}

// Minus removes t and returns d.
func (d *Dynamics) Minus(t DynamicsTerm) (*Dynamics, error) {
	return d, d.Remove(t)
}

// Combine adds clones of every term of other.
func (d *Dynamics) Combine(other *Dynamics) error {
	if other == nil {
		return nil
	}
	return d.TermSum.Combine(other.TermSum)
}

// Equal reports whether d and other hold the same terms.
func (d *Dynamics) Equal(other *Dynamics) bool {
	if other == nil {
		return false
	}
	return d.TermSum.Equal(other.TermSum)
}

func energyTerms(terms []EnergyTerm) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = t
	}
	return out
}

func dynamicsTerms(terms []DynamicsTerm) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = t
	}
	return out
}
