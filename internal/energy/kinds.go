package energy

import "github.com/san-kum/micromag/internal/micromag"

// Kinds returns the catalog entries for every energy term.
func Kinds() []micromag.Kind {
	return []micromag.Kind{
		{
			Name:     "exchange",
			Family:   micromag.FamilyEnergy,
			Schema:   exchangeSchema,
			Defaults: map[string]any{"name": "exchange"},
			Build:    func(a micromag.Attrs) micromag.Term { return &Exchange{Attrs: a} },
		},
		{
			Name:     "zeeman",
			Family:   micromag.FamilyEnergy,
			Schema:   zeemanSchema,
			Defaults: map[string]any{"name": "zeeman"},
			Build:    func(a micromag.Attrs) micromag.Term { return &Zeeman{Attrs: a} },
		},
		{
			Name:     "uniaxialanisotropy",
			Family:   micromag.FamilyEnergy,
			Schema:   uniaxialSchema,
			Defaults: map[string]any{"name": "uniaxialanisotropy"},
			Build:    func(a micromag.Attrs) micromag.Term { return &UniaxialAnisotropy{Attrs: a} },
		},
		{
			Name:     "demag",
			Family:   micromag.FamilyEnergy,
			Schema:   demagSchema,
			Defaults: map[string]any{"name": "demag"},
			Build:    func(a micromag.Attrs) micromag.Term { return &Demag{Attrs: a} },
		},
		{
			Name:     "dmi",
			Family:   micromag.FamilyEnergy,
			Schema:   dmiSchema,
			Defaults: map[string]any{"name": "dmi", "crystalclass": ClassCnv},
			Build:    func(a micromag.Attrs) micromag.Term { return &DMI{Attrs: a} },
		},
	}
}

var (
	_ micromag.EnergyTerm   = (*Exchange)(nil)
	_ micromag.EnergyTerm   = (*Zeeman)(nil)
	_ micromag.EnergyTerm   = (*UniaxialAnisotropy)(nil)
	_ micromag.EnergyTerm   = (*Demag)(nil)
	_ micromag.EnergyTerm   = (*DMI)(nil)
	_ micromag.Configurable = (*Exchange)(nil)
)
