package components

import (
	"strings"
	"testing"

	"foldercolor/internal/catalog"
	"foldercolor/pkg/testutils"
	"foldercolor/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmDialogHandleKey(t *testing.T) {
	keys := types.DefaultKeyMap()
	d := NewConfirmDialog(catalog.Visible{Index: 2, Entry: catalog.Entry{Name: "blue", Color: "#5294e2"}})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want DialogResult
	}{
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, DialogConfirmed},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEscape}, DialogCancelled},
		{"q cancels", runes("q"), DialogCancelled},
		{"y is ignored", runes("y"), DialogPending},
		{"down is ignored", tea.KeyMsg{Type: tea.KeyDown}, DialogPending},
		{"space is ignored", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, DialogPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.HandleKey(tt.msg, keys))
		})
	}
}

func TestConfirmDialogView(t *testing.T) {
	d := NewConfirmDialog(catalog.Visible{Index: 2, Entry: catalog.Entry{Name: "bluegrey", Color: "#607d8b"}})
	out := testutils.StripANSI(d.View(types.DefaultKeyMap(), help.New()))

	assert.Contains(t, out, "Apply folder color?")
	assert.Contains(t, out, "■■ bluegrey")
	assert.Contains(t, out, "enter")
	assert.Contains(t, out, "esc/q")
}

func TestWrapMessage(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, WrapMessage("  \n ", 60, 8))
	})

	t.Run("short lines kept", func(t *testing.T) {
		assert.Equal(t, []string{"not found", "try again"}, WrapMessage("not found\ntry again\n", 60, 8))
	})

	t.Run("long line word wrapped", func(t *testing.T) {
		msg := strings.Repeat("word ", 30)
		lines := WrapMessage(msg, 20, 0)
		require.Greater(t, len(lines), 1)
		for _, l := range lines {
			assert.LessOrEqual(t, lipgloss.Width(l), 20)
		}
	})

	t.Run("unbroken word hard wrapped", func(t *testing.T) {
		lines := WrapMessage(strings.Repeat("x", 45), 20, 0)
		assert.Equal(t, []string{strings.Repeat("x", 20), strings.Repeat("x", 20), strings.Repeat("x", 5)}, lines)
	})

	t.Run("too many lines truncated", func(t *testing.T) {
		msg := strings.Repeat("line\n", 12)
		lines := WrapMessage(msg, 60, 8)
		require.Len(t, lines, 8)
		assert.True(t, strings.HasSuffix(lines[7], "…"))
	})
}

func TestErrorBoxView(t *testing.T) {
	b := NewErrorBox()
	assert.Empty(t, b.View())

	b.SetText("Error: not found")
	out := testutils.StripANSI(b.View())
	assert.Contains(t, out, "Error: not found")

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 3)
	// Border, one space of padding each side, then the text.
	assert.Equal(t, lipgloss.Width("Error: not found")+4, lipgloss.Width(rows[0]))

	b.SetText(strings.Repeat("a", 200))
	for _, row := range strings.Split(testutils.StripANSI(b.View()), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(row), MaxErrorWidth+4)
	}
}
