package energy

import (
	"fmt"

	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
)

const zeemanLatex = `$-\mu_{0}M_\text{s} \mathbf{m} \cdot \mathbf{H}$`

var zeemanSchema = micromag.TermSchema.Extend("Zeeman", typesystem.Fields{
	"H": typesystem.Vector,
})

// Zeeman couples the magnetisation to an applied field H in A/m.
type Zeeman struct {
	micromag.EnergyMarker
	micromag.Attrs
}

// NewZeeman returns a Zeeman term for the applied field H in A/m.
func NewZeeman(H [3]float64, opts ...micromag.Option) (*Zeeman, error) {
	attrs, err := micromag.NewAttrs(zeemanSchema, map[string]any{"H": H, "name": "zeeman"}, opts...)
	if err != nil {
		return nil, err
	}
	return &Zeeman{Attrs: attrs}, nil
}

func (z *Zeeman) H() [3]float64 { return z.Vector("H") }

func (z *Zeeman) SetH(H [3]float64) error { return z.SetParam("H", H) }

func (z *Zeeman) Latex() string { return zeemanLatex }

func (z *Zeeman) Repr() string {
	return fmt.Sprintf("Zeeman(H=%s)", micromag.FormatValue(z.H()))
}

func (z *Zeeman) Clone() micromag.Term { return &Zeeman{Attrs: z.CloneAttrs()} }
