package views

import (
	"fmt"
	"strings"

	"foldercolor/internal/catalog"
	"foldercolor/internal/tui/common"
	"foldercolor/internal/tui/components"
	"foldercolor/internal/tui/styles"
	"foldercolor/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

const (
	title      = "Papirus Folder Color Switcher"
	nameColumn = 12
)

// RenderMainView draws the whole frame from model state. It only reads.
func RenderMainView(m common.ModelReader) string {
	var sb strings.Builder

	sb.WriteString(renderBanner())
	sb.WriteString("\n")

	if candidate, ok := m.Confirming(); ok {
		dialog := components.NewConfirmDialog(candidate).View(m.Keys(), m.Help())
		if m.Width() > 0 {
			dialog = lipgloss.PlaceHorizontal(m.Width()-styles.Theme.App.GetHorizontalFrameSize(), lipgloss.Center, dialog)
		}
		sb.WriteString("\n" + dialog + "\n")
		return styles.Theme.App.Render(sb.String())
	}

	sb.WriteString(RenderHint(m))
	sb.WriteString("\n")
	sb.WriteString(RenderList(m))

	if line := RenderSearchLine(m); line != "" {
		sb.WriteString("\n" + line + "\n")
	}

	if msg := m.ErrorMessage(); msg != "" {
		box := components.NewErrorBox()
		box.SetText(msg)
		sb.WriteString("\n" + box.View() + "\n")
	}

	sb.WriteString("\n" + RenderKeyCommands(m))

	return styles.Theme.App.Render(sb.String())
}

func renderBanner() string {
	return styles.Theme.Title.Render(title)
}

// RenderHint is the one-line instruction under the banner.
func RenderHint(m common.ModelReader) string {
	if m.Mode() == types.Searching {
		return styles.Theme.Hint.Render("Type to filter, arrows to move, enter to pick.")
	}
	return styles.Theme.Hint.Render("Pick a folder color and press enter to apply it.")
}

// RenderList draws one row per visible entry.
func RenderList(m common.ModelReader) string {
	rows := m.Rows()
	if len(rows) == 0 {
		return styles.Theme.Dim.Render("  no matching colors") + "\n"
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(renderRow(row, row.Index == m.Highlighted(), row.Index == m.Active()))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderRow(row catalog.Visible, highlighted, active bool) string {
	marker := " "
	nameStyle := styles.Theme.Name
	if highlighted {
		marker = styles.Theme.Cursor.Render("›")
		nameStyle = styles.Theme.Highlighted
	}

	name := nameStyle.Render(fmt.Sprintf("%-*s", nameColumn, row.Entry.Name))
	line := fmt.Sprintf("%s %s %s", marker, styles.Swatch(row.Entry.Color), name)
	if active {
		line += " " + styles.Theme.ActiveMarker.Render("(active)")
	}
	return strings.TrimRight(line, " ")
}

// RenderSearchLine shows the filter input while searching, and a dimmed
// reminder when a filter is still applied after leaving search.
func RenderSearchLine(m common.ModelReader) string {
	if m.Searching() {
		return styles.Theme.Search.Render("/ "+m.FilterText()) + styles.Theme.SearchCursor.Render("█")
	}
	if m.FilterText() != "" {
		return styles.Theme.Dim.Render(fmt.Sprintf("filter: %s  (/ to edit)", m.FilterText()))
	}
	return ""
}

// RenderKeyCommands is the footer legend for the current mode.
func RenderKeyCommands(m common.ModelReader) string {
	keys := m.Keys()
	bindings := keys.BrowseHelp()
	if m.Mode() == types.Searching {
		bindings = keys.SearchHelp()
	}
	return m.Help().ShortHelpView(bindings)
}
