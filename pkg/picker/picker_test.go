package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewAppliesPreselection(t *testing.T) {
	m := New("pick", []string{".cs", ".go", ".md"}, []string{".GO", ".rs"})
	assert.Equal(t, []string{".go"}, m.Selected())
	assert.Contains(t, m.View(), "[x] .go")
	assert.Contains(t, m.View(), "[ ] .cs")
}

func TestToggleAndMove(t *testing.T) {
	m := New("pick", []string{".cs", ".go", ".md"}, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{".cs"}, m.Selected())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"), runes("j"), runes("x"))
	assert.Equal(t, []string{".cs", ".md"}, m.Selected())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{".cs", ".go", ".md"}, m.Selected())
}

func TestToggleAll(t *testing.T) {
	m := New("pick", []string{".cs", ".go"}, []string{".cs"})

	m, _ = press(t, m, runes("a"))
	assert.Equal(t, []string{".cs", ".go"}, m.Selected())

	m, _ = press(t, m, runes("a"))
	assert.Empty(t, m.Selected())
}

func TestConfirmAndCancel(t *testing.T) {
	m := New("pick", []string{".go"}, []string{".go"})
	confirmed, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, confirmed.Cancelled())
	assert.Equal(t, []string{".go"}, confirmed.Selected())
	assert.Empty(t, confirmed.View())

	cancelled, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, cancelled.Cancelled())
}

func TestRunWithNoItems(t *testing.T) {
	selected, err := Run("pick", nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, selected)
}
