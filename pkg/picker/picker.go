// Package picker is a terminal checkbox list for choosing which extensions to export.
package picker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves the picker without confirming.
var ErrCancelled = errors.New("selection cancelled")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model behind the picker.
type Model struct {
	title     string
	items     []string
	checked   []bool
	cursor    int
	confirmed bool
	cancelled bool
}

// New builds a model over items with the entries in preselected already checked.
// Preselected entries are matched case-insensitively.
func New(title string, items []string, preselected []string) Model {
	pre := make(map[string]bool, len(preselected))
	for _, p := range preselected {
		pre[strings.ToLower(p)] = true
	}

	checked := make([]bool, len(items))
	for i, item := range items {
		checked[i] = pre[strings.ToLower(item)]
	}
	return Model{title: title, items: items, checked: checked}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ", "space", "x":
		if len(m.items) > 0 {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	case "a":
		all := m.allChecked()
		for i := range m.checked {
			m.checked[i] = !all
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, item)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: toggle  a: all  enter: confirm  esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the checked items in display order.
func (m Model) Selected() []string {
	var out []string
	for i, item := range m.items {
		if m.checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// Cancelled reports whether the user quit without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

func (m Model) allChecked() bool {
	for _, c := range m.checked {
		if !c {
			return false
		}
	}
	return true
}

// Run shows the picker on the given terminal streams and returns the confirmed selection.
func Run(title string, items, preselected []string, in io.Reader, out io.Writer) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	p := tea.NewProgram(New(title, items, preselected), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("picker returned unexpected model %T", final)
	}
	if m.Cancelled() {
		return nil, ErrCancelled
	}
	return m.Selected(), nil
}
