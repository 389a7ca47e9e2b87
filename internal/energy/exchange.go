package energy

import (
	"fmt"

	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
)

const exchangeLatex = `$A [(\nabla m_{x})^{2} + (\nabla m_{y})^{2} + (\nabla m_{z})^{2}]$`

var exchangeSchema = micromag.TermSchema.Extend("Exchange", typesystem.Fields{
	"A": typesystem.UnsignedReal,
})

// Exchange is the isotropic exchange energy. A is in J/m.
type Exchange struct {
	micromag.EnergyMarker
	micromag.Attrs
}

// NewExchange returns an exchange term with stiffness A >= 0.
func NewExchange(A float64, opts ...micromag.Option) (*Exchange, error) {
	attrs, err := micromag.NewAttrs(exchangeSchema, map[string]any{"A": A, "name": "exchange"}, opts...)
	if err != nil {
		return nil, err
	}
	return &Exchange{Attrs: attrs}, nil
}

func (e *Exchange) A() float64 { return e.Float("A") }

func (e *Exchange) SetA(A float64) error { return e.SetParam("A", A) }

func (e *Exchange) Latex() string { return exchangeLatex }

func (e *Exchange) Repr() string {
	return fmt.Sprintf("Exchange(A=%s)", micromag.FormatValue(e.A()))
}

func (e *Exchange) Clone() micromag.Term { return &Exchange{Attrs: e.CloneAttrs()} }
