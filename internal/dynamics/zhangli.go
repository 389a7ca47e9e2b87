package dynamics

import (
	"fmt"

	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
)

const zhangLiLatex = `$-(\mathbf{u} \cdot \boldsymbol\nabla)\mathbf{m} + \beta\mathbf{m} \times \big[(\mathbf{u} \cdot \boldsymbol\nabla)\mathbf{m}\big]$`

var zhangLiSchema = micromag.TermSchema.Extend("ZhangLi", typesystem.Fields{
	"u":    typesystem.Real,
	"beta": typesystem.UnsignedReal,
})

// ZhangLi is the spin-transfer torque of a current flowing along x.
// u is the spin drift velocity in m/s and beta the non-adiabatic factor.
type ZhangLi struct {
	micromag.DynamicsMarker
	micromag.Attrs
}

// NewZhangLi returns a Zhang-Li spin-transfer torque term with drift velocity u and non-adiabaticity beta.
func NewZhangLi(u, beta float64, opts ...micromag.Option) (*ZhangLi, error) {
	attrs, err := micromag.NewAttrs(zhangLiSchema, map[string]any{
		"u":    u,
		"beta": beta,
		"name": "zhangli",
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &ZhangLi{Attrs: attrs}, nil
}

func (z *ZhangLi) U() float64 { return z.Float("u") }

func (z *ZhangLi) Beta() float64 { return z.Float("beta") }

func (z *ZhangLi) SetU(u float64) error { return z.SetParam("u", u) }

func (z *ZhangLi) SetBeta(beta float64) error { return z.SetParam("beta", beta) }

func (z *ZhangLi) Latex() string { return zhangLiLatex }

func (z *ZhangLi) Repr() string {
	return fmt.Sprintf("ZhangLi(u=%s, beta=%s)", micromag.FormatValue(z.U()), micromag.FormatValue(z.Beta()))
}

func (z *ZhangLi) Clone() micromag.Term { return &ZhangLi{Attrs: z.CloneAttrs()} }
