package dynamics

import "github.com/san-kum/micromag/internal/micromag"

// Kinds returns the catalog entries for every dynamics term.
func Kinds() []micromag.Kind {
	return []micromag.Kind{
		{
			Name:     "precession",
			Family:   micromag.FamilyDynamics,
			Schema:   precessionSchema,
			Defaults: map[string]any{"name": "precession", "gamma0": DefaultGamma0},
			Build:    func(a micromag.Attrs) micromag.Term { return &Precession{Attrs: a} },
		},
		{
			Name:     "damping",
			Family:   micromag.FamilyDynamics,
			Schema:   dampingSchema,
			Defaults: map[string]any{"name": "damping"},
			Build:    func(a micromag.Attrs) micromag.Term { return &Damping{Attrs: a} },
		},
		{
			Name:     "zhangli",
			Family:   micromag.FamilyDynamics,
			Schema:   zhangLiSchema,
			Defaults: map[string]any{"name": "zhangli"},
			Build:    func(a micromag.Attrs) micromag.Term { return &ZhangLi{Attrs: a} },
		},
	}
}

var (
	_ micromag.DynamicsTerm = (*Precession)(nil)
	_ micromag.DynamicsTerm = (*Damping)(nil)
	_ micromag.DynamicsTerm = (*ZhangLi)(nil)
)
