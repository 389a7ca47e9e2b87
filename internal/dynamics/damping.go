package dynamics

import (
	"fmt"

	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
)

const dampingLatex = `$\alpha \mathbf{m} \times\frac{\partial \mathbf{m}}{\partial t}$`

var dampingSchema = micromag.TermSchema.Extend("Damping", typesystem.Fields{
	"alpha": typesystem.UnsignedReal,
})

// Damping is the Gilbert damping torque. Alpha is dimensionless.
type Damping struct {
	micromag.DynamicsMarker
	micromag.Attrs
}

// NewDamping returns a Gilbert damping term with alpha >= 0.
func NewDamping(alpha float64, opts ...micromag.Option) (*Damping, error) {
	attrs, err := micromag.NewAttrs(dampingSchema, map[string]any{"alpha": alpha, "name": "damping"}, opts...)
	if err != nil {
		return nil, err
	}
	return &Damping{Attrs: attrs}, nil
}

func (d *Damping) Alpha() float64 { return d.Float("alpha") }

func (d *Damping) SetAlpha(alpha float64) error { return d.SetParam("alpha", alpha) }

func (d *Damping) Latex() string { return dampingLatex }

func (d *Damping) Repr() string {
	return fmt.Sprintf("Damping(alpha=%s)", micromag.FormatValue(d.Alpha()))
}

func (d *Damping) Clone() micromag.Term { return &Damping{Attrs: d.CloneAttrs()} }
