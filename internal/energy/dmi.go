package energy

import (
	"fmt"

	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
)

// Crystal classes with a known DMI energy density.
const (
	ClassT   = "T"
	ClassCnv = "Cnv"
	ClassD2d = "D2d"
)

var dmiLatex = map[string]string{
	ClassT:   `$D \mathbf{m} \cdot (\nabla \times \mathbf{m})$`,
	ClassCnv: `$D ( \mathbf{m} \cdot \nabla m_{z} - m_{z} \nabla \cdot \mathbf{m} )$`,
	ClassD2d: `$D\mathbf{m} \cdot \left(\frac{\partial \mathbf{m}}{\partial x} \times \hat{x} - \frac{\partial \mathbf{m}}{\partial y} \times \hat{y}\right)$`,
}

var dmiSchema = micromag.TermSchema.Extend("DMI", typesystem.Fields{
	"D":            typesystem.Real,
	"crystalclass": typesystem.OneOf(ClassT, ClassCnv, ClassD2d),
})

// DMI is the Dzyaloshinskii-Moriya energy. D is in J/m^2.
type DMI struct {
	micromag.EnergyMarker
	micromag.Attrs
}

// NewDMI returns a DMI term for one of the crystal classes T, Cnv or D2d.
func NewDMI(D float64, crystalclass string, opts ...micromag.Option) (*DMI, error) {
	attrs, err := micromag.NewAttrs(dmiSchema, map[string]any{
		"D":            D,
		"crystalclass": crystalclass,
		"name":         "dmi",
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &DMI{Attrs: attrs}, nil
}

func (d *DMI) D() float64 { return d.Float("D") }

func (d *DMI) CrystalClass() string { return d.Text("crystalclass") }

func (d *DMI) SetD(D float64) error { return d.SetParam("D", D) }

func (d *DMI) SetCrystalClass(class string) error { return d.SetParam("crystalclass", class) }

// Latex depends on the crystal class.
func (d *DMI) Latex() string { return dmiLatex[d.CrystalClass()] }

func (d *DMI) Repr() string {
	return fmt.Sprintf("DMI(D=%s, crystalclass=%s)",
		micromag.FormatValue(d.D()), micromag.FormatValue(d.CrystalClass()))
}

func (d *DMI) Clone() micromag.Term { return &DMI{Attrs: d.CloneAttrs()} }
