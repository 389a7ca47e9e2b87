package energy

import "github.com/san-kum/micromag/internal/micromag"

const demagLatex = `$-\frac{1}{2}\mu_{0}M_\text{s}\mathbf{m} \cdot \mathbf{H}_\text{d}$`

var demagSchema = micromag.TermSchema.Extend("Demag", nil)

// Demag is the magnetostatic energy. It has no parameters besides its name.
type Demag struct {
	micromag.EnergyMarker
	micromag.Attrs
}

// NewDemag returns a demagnetisation term named "demag".
func NewDemag(opts ...micromag.Option) (*Demag, error) {
	attrs, err := micromag.NewAttrs(demagSchema, map[string]any{"name": "demag"}, opts...)
	if err != nil {
		return nil, err
	}
	return &Demag{Attrs: attrs}, nil
}

func (d *Demag) Latex() string { return demagLatex }

func (d *Demag) Repr() string { return "Demag()" }

func (d *Demag) Clone() micromag.Term { return &Demag{Attrs: d.CloneAttrs()} }
