package dynamics

import (
	"fmt"

	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
)

// DefaultGamma0 is the gyromagnetic ratio times mu0, in m/As.
const DefaultGamma0 = 2.211e5

const precessionLatex = `$-\gamma_{0}^{*} \mathbf{m} \times \mathbf{H}_\text{eff}$`

var precessionSchema = micromag.TermSchema.Extend("Precession", typesystem.Fields{
	"gamma0": typesystem.UnsignedReal,
})

// Precession is the Larmor precession about the effective field.
type Precession struct {
	micromag.DynamicsMarker
	micromag.Attrs
}

// NewPrecession returns a precession term. Pass [DefaultGamma0] for the free-electron value.
func NewPrecession(gamma0 float64, opts ...micromag.Option) (*Precession, error) {
	attrs, err := micromag.NewAttrs(precessionSchema, map[string]any{"gamma0": gamma0, "name": "precession"}, opts...)
	if err != nil {
		return nil, err
	}
	return &Precession{Attrs: attrs}, nil
}

func (p *Precession) Gamma0() float64 { return p.Float("gamma0") }

func (p *Precession) SetGamma0(gamma0 float64) error { return p.SetParam("gamma0", gamma0) }

func (p *Precession) Latex() string { return precessionLatex }

func (p *Precession) Repr() string {
	return fmt.Sprintf("Precession(gamma0=%s)", micromag.FormatValue(p.Gamma0()))
}

func (p *Precession) Clone() micromag.Term { return &Precession{Attrs: p.CloneAttrs()} }
