package config

import "sort"

var Presets = map[string]*Model{
	"skyrmion": {
		Name: "skyrmion",
		Hamiltonian: []TermSpec{
			{Kind: "exchange", Params: map[string]any{"A": 1.6e-11}},
			{Kind: "dmi", Params: map[string]any{"D": 4e-3, "crystalclass": "Cnv"}},
			{Kind: "uniaxialanisotropy", Params: map[string]any{"K1": 5.1e5, "u": []float64{0, 0, 1}}},
			{Kind: "zeeman", Params: map[string]any{"H": []float64{0, 0, 2e5}}},
			{Kind: "demag"},
		},
		Dynamics: []TermSpec{
			{Kind: "precession", Params: map[string]any{"gamma0": 2.211e5}},
			{Kind: "damping", Params: map[string]any{"alpha": 0.3}},
		},
	},
	"domainwall": {
		Name: "domainwall",
		Hamiltonian: []TermSpec{
			{Kind: "exchange", Params: map[string]any{"A": 1.3e-11}},
			{Kind: "uniaxialanisotropy", Params: map[string]any{"K1": 5e5, "u": []float64{1, 0, 0}}},
			{Kind: "demag"},
		},
		Dynamics: []TermSpec{
			{Kind: "precession", Params: map[string]any{"gamma0": 2.211e5}},
			{Kind: "damping", Params: map[string]any{"alpha": 0.02}},
			{Kind: "zhangli", Params: map[string]any{"u": 100.0, "beta": 0.04}},
		},
	},
	"macrospin": {
		Name: "macrospin",
		Hamiltonian: []TermSpec{
			{Kind: "zeeman", Params: map[string]any{"H": []float64{0, 0, 1e6}}},
			{Kind: "uniaxialanisotropy", Params: map[string]any{"K1": 1e4, "u": []float64{0, 0, 1}}},
		},
		Dynamics: []TermSpec{
			{Kind: "precession", Params: map[string]any{"gamma0": 2.211e5}},
			{Kind: "damping", Params: map[string]any{"alpha": 0.1}},
		},
	},
}

// GetPreset returns the named preset, or nil if there is none.
func GetPreset(name string) *Model {
	return Presets[name]
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
