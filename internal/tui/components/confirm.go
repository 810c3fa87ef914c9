package components

import (
	"fmt"
	"strings"

	"foldercolor/internal/catalog"
	"foldercolor/internal/tui/styles"
	"foldercolor/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DialogResult is the outcome of one key press in the confirmation dialog.
type DialogResult int

const (
	// DialogPending means the dialog is still waiting.
	DialogPending DialogResult = iota
	// DialogConfirmed means the user accepted the candidate.
	DialogConfirmed
	// DialogCancelled means the user backed out.
	DialogCancelled
)

// ConfirmDialog asks whether to apply Candidate. It never times out.
type ConfirmDialog struct {
	Candidate catalog.Visible
}

func NewConfirmDialog(candidate catalog.Visible) *ConfirmDialog {
	return &ConfirmDialog{Candidate: candidate}
}

// HandleKey maps a key press to a result. Only the confirm and cancel
// bindings do anything.
func (d *ConfirmDialog) HandleKey(msg tea.KeyMsg, keys *types.KeyMap) DialogResult {
	switch {
	case key.Matches(msg, keys.Confirm):
		return DialogConfirmed
	case key.Matches(msg, keys.Cancel):
		return DialogCancelled
	}
	return DialogPending
}

func (d *ConfirmDialog) View(keys *types.KeyMap, h help.Model) string {
	var sb strings.Builder
	sb.WriteString(styles.Theme.DialogTitle.Render("Apply folder color?"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%s %s", styles.Swatch(d.Candidate.Entry.Color),
		styles.Theme.Highlighted.Render(d.Candidate.Entry.Name)))
	sb.WriteString("\n\n")
	sb.WriteString(h.ShortHelpView(keys.DialogHelp()))
	return styles.Theme.Dialog.Render(sb.String())
}
