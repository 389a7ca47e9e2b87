package energy

import (
	"fmt"

	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
)

const uniaxialLatex = `$-K_{1} (\mathbf{m} \cdot \mathbf{u})^{2}$`

var uniaxialSchema = micromag.TermSchema.Extend("UniaxialAnisotropy", typesystem.Fields{
	"K1": typesystem.Real,
	"u":  typesystem.Vector,
})

// UniaxialAnisotropy favours alignment with axis u. K1 is in J/m^3 and may
// be negative for an easy plane.
type UniaxialAnisotropy struct {
	micromag.EnergyMarker
	micromag.Attrs
}

// NewUniaxialAnisotropy returns an anisotropy term with constant K1 along u.
func NewUniaxialAnisotropy(K1 float64, u [3]float64, opts ...micromag.Option) (*UniaxialAnisotropy, error) {
	attrs, err := micromag.NewAttrs(uniaxialSchema, map[string]any{
		"K1":   K1,
		"u":    u,
		"name": "uniaxialanisotropy",
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &UniaxialAnisotropy{Attrs: attrs}, nil
}

func (a *UniaxialAnisotropy) K1() float64 { return a.Float("K1") }

func (a *UniaxialAnisotropy) U() [3]float64 { return a.Vector("u") }

func (a *UniaxialAnisotropy) SetK1(K1 float64) error { return a.SetParam("K1", K1) }

func (a *UniaxialAnisotropy) SetU(u [3]float64) error { return a.SetParam("u", u) }

func (a *UniaxialAnisotropy) Latex() string { return uniaxialLatex }

func (a *UniaxialAnisotropy) Repr() string {
	return fmt.Sprintf("UniaxialAnisotropy(K1=%s, u=%s)",
		micromag.FormatValue(a.K1()), micromag.FormatValue(a.U()))
}

func (a *UniaxialAnisotropy) Clone() micromag.Term {
	return &UniaxialAnisotropy{Attrs: a.CloneAttrs()}
}
