package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/typesystem"
	"github.com/san-kum/micromag/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type state int

const (
	stateTerms state = iota
	stateParams
)

type entry struct {
	sum  *micromag.TermSum
	term micromag.Term
}

type model struct {
	sys     *micromag.System
	state   state
	entries []entry
	cursor  int

	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	status string
	err    error
}

// NewInspector returns a bubbletea model that browses sys and edits term
// parameters in place. Every edit goes through the term's constraint table.
func NewInspector(sys *micromag.System) tea.Model {
	m := model{sys: sys}
	m.refresh()
	return m
}

// RunInspector blocks until the user quits.
func RunInspector(sys *micromag.System) error {
	p := tea.NewProgram(NewInspector(sys), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) refresh() {
	m.entries = m.entries[:0]
	for t := range m.sys.Hamiltonian.All() {
		m.entries = append(m.entries, entry{m.sys.Hamiltonian.TermSum, t})
	}
	for t := range m.sys.Dynamics.All() {
		m.entries = append(m.entries, entry{m.sys.Dynamics.TermSum, t})
	}
	if m.cursor >= len(m.entries) {
		m.cursor = max(len(m.entries)-1, 0)
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateTerms:
			return m.termsKey(key)
		case stateParams:
			return m.paramsKey(key)
		}
	}
	return m, nil
}

func (m model) termsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "d", "delete":
		if len(m.entries) == 0 {
			return m, nil
		}
		e := m.entries[m.cursor]
		m.err = e.sum.Remove(e.term)
		if m.err == nil {
			m.status = "removed " + e.term.Name()
		}
		m.refresh()
	case "enter", " ":
		if len(m.entries) == 0 {
			return m, nil
		}
		c, ok := m.entries[m.cursor].term.(micromag.Configurable)
		if !ok {
			m.status = "term has no parameters"
			return m, nil
		}
		m.paramNames = c.ParamNames()
		m.paramCursor = 0
		m.state = stateParams
		m.status, m.err = "", nil
	}
	return m, nil
}

func (m model) paramsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	c := m.entries[m.cursor].term.(micromag.Configurable)

	if m.editing {
		switch msg.Type {
		case tea.KeyEnter:
			name := m.paramNames[m.paramCursor]
			m.err = c.SetParam(name, valueFor(c, name, m.editBuf))
			if m.err == nil {
				m.status = "set " + name
			}
			m.editing = false
			m.editBuf = ""
		case tea.KeyEsc:
			m.editing = false
			m.editBuf = ""
		case tea.KeyBackspace:
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		case tea.KeyRunes, tea.KeySpace:
			m.editBuf += string(msg.Runes)
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateTerms
		m.status = ""
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		v, _ := c.Param(m.paramNames[m.paramCursor])
		m.editing = true
		m.editBuf = editText(v)
		m.status, m.err = "", nil
	}
	return m, nil
}

// valueFor keeps s as text when every constraint on attr admits text,
// so a name like "2e3" stays a string. Otherwise it guesses with parseValue.
func valueFor(c micromag.Configurable, attr, s string) any {
	sc, ok := c.(interface{ Schema() *typesystem.Schema })
	if !ok {
		return parseValue(s)
	}
	cs := sc.Schema().Constraints(attr)
	if len(cs) == 0 {
		return parseValue(s)
	}
	for _, con := range cs {
		if !con.Descriptor.Admits(s) {
			return parseValue(s)
		}
	}
	return s
}

// parseValue reads a number, a comma separated vector, or falls back to text.
func parseValue(s string) any {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	parts := strings.Split(s, ",")
	if len(parts) == 3 {
		var vec [3]float64
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return s
			}
			vec[i] = f
		}
		return vec
	}
	return s
}

func editText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case [3]float64:
		return fmt.Sprintf("%s, %s, %s",
			micromag.FormatValue(x[0]), micromag.FormatValue(x[1]), micromag.FormatValue(x[2]))
	default:
		return micromag.FormatValue(v)
	}
}

func (m model) View() string {
	switch m.state {
	case stateParams:
		return m.viewParams()
	default:
		return m.viewTerms()
	}
}

func (m model) viewTerms() string {
	var b strings.Builder
	b.WriteString("\n  " + cyan.Render("system "+m.sys.Name()) + "\n\n")

	if len(m.entries) == 0 {
		b.WriteString("  " + dim.Render("no terms") + "\n")
	}
	for i, e := range m.entries {
		line := fmt.Sprintf("%-10s %-20s %s", e.sum.Family(), e.term.Name(), e.term.Repr())
		if i == m.cursor {
			b.WriteString("  " + viz.NeonGlow.Render("> "+line) + "\n")
		} else {
			b.WriteString("    " + white.Render(line) + "\n")
		}
	}

	b.WriteString("\n  " + dim.Render(m.sys.Hamiltonian.Latex()) + "\n")
	b.WriteString(m.footer())
	b.WriteString("\n  " + viz.KeyHint.Render("↑/↓ select  enter edit  d remove  q quit") + "\n")
	return b.String()
}

func (m model) viewParams() string {
	e := m.entries[m.cursor]
	c := e.term.(micromag.Configurable)

	var b strings.Builder
	b.WriteString("\n  " + cyan.Render(e.term.Repr()) + "\n\n")
	for i, name := range m.paramNames {
		v, _ := c.Param(name)
		val := micromag.FormatValue(v)
		if m.editing && i == m.paramCursor {
			val = yellow.Render(m.editBuf + "_")
		}
		line := fmt.Sprintf("%-14s %s", name, val)
		if i == m.paramCursor {
			b.WriteString("  " + viz.NeonGlow.Render("> "+line) + "\n")
		} else {
			b.WriteString("    " + white.Render(line) + "\n")
		}
	}
	b.WriteString("\n  " + dim.Render(e.term.Latex()) + "\n")
	b.WriteString(m.footer())
	b.WriteString("\n  " + viz.KeyHint.Render("↑/↓ select  enter edit/apply  esc back") + "\n")
	return b.String()
}

func (m model) footer() string {
	switch {
	case m.err != nil:
		return "\n  " + red.Render(m.err.Error()) + "\n"
	case m.status != "":
		return "\n  " + green.Render(m.status) + "\n"
	default:
		return ""
	}
}
