package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/micromag/internal/micromag"
)

// RenderTerm formats one term with its parameters.
func RenderTerm(t micromag.Term) string {
	var b strings.Builder
	b.WriteString(TermName.Render(t.Name()))
	b.WriteString("  ")
	b.WriteString(t.Repr())
	if c, ok := t.(micromag.Configurable); ok {
		for _, p := range c.ParamNames() {
			if p == "name" {
				continue
			}
			v, _ := c.Param(p)
			b.WriteString("\n    ")
			b.WriteString(ParamLabel.Render(fmt.Sprintf("%-14s", p)))
			b.WriteString(ParamValue.Render(micromag.FormatValue(v)))
		}
	}
	b.WriteString("\n    ")
	b.WriteString(Subtle.Render(t.Latex()))
	return b.String()
}

// RenderSum formats a titled panel listing every member of sum.
func RenderSum(title string, sum *micromag.TermSum) string {
	lines := []string{GradientTitle.Render(fmt.Sprintf("%s (%d)", title, sum.Len()))}
	if sum.Len() == 0 {
		lines = append(lines, Subtle.Render("no terms"))
	}
	for t := range sum.All() {
		lines = append(lines, RenderTerm(t))
	}
	return GlassPanel.Render(strings.Join(lines, "\n"))
}

// RenderSystem formats both sums of sys.
func RenderSystem(sys *micromag.System) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render("system "+sys.Name()),
		RenderSum("hamiltonian", sys.Hamiltonian.TermSum),
		RenderSum("dynamics", sys.Dynamics.TermSum),
	)
}

// RenderKinds formats the constraint table of every kind.
func RenderKinds(kinds []micromag.Kind) string {
	var b strings.Builder
	for i, k := range kinds {
		if i > 0 {
			b.WriteString(Separator(60) + "\n")
		}
		fmt.Fprintf(&b, "%s %s\n", TermName.Render(k.Name), Subtle.Render("["+k.Family.String()+"]"))
		for _, attr := range k.Schema.Attributes() {
			for _, c := range k.Schema.Constraints(attr) {
				line := fmt.Sprintf("    %-14s %-14s %s", attr, c.Descriptor.Name, c.Descriptor.Expected)
				if d, ok := k.Defaults[attr]; ok {
					line += "  (default " + micromag.FormatValue(d) + ")"
				}
				b.WriteString(ParamLabel.Render(line))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
