package components

import (
	"strings"

	"foldercolor/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	// MaxErrorWidth caps the text width of the error box.
	MaxErrorWidth = 60
	// MaxErrorLines caps how many wrapped lines the error box shows.
	MaxErrorLines = 8
)

// ErrorBox draws a bordered message sized to its longest line.
type ErrorBox struct {
	text  string
	style lipgloss.Style
}

func NewErrorBox() *ErrorBox {
	return &ErrorBox{
		style: styles.Theme.ErrorBox,
	}
}

func (b *ErrorBox) SetText(text string) {
	b.text = text
}

func (b *ErrorBox) View() string {
	lines := WrapMessage(b.text, MaxErrorWidth, MaxErrorLines)
	if len(lines) == 0 {
		return ""
	}

	width := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > width {
			width = w
		}
	}
	// Width covers the horizontal padding as well as the text.
	pad := b.style.GetHorizontalPadding()
	return b.style.Width(width + pad).Render(strings.Join(lines, "\n"))
}

// WrapMessage splits msg into lines no wider than limit, word wrapping first
// and hard wrapping words that still do not fit. Past maxLines the output is
// cut and the last kept line ends in an ellipsis.
func WrapMessage(msg string, limit, maxLines int) []string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\t", "    ")
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil
	}

	var lines []string
	for _, raw := range strings.Split(msg, "\n") {
		raw = strings.TrimRight(raw, " ")
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		wrapped := wrap.String(wordwrap.String(raw, limit), limit)
		for _, l := range strings.Split(wrapped, "\n") {
			lines = append(lines, strings.TrimRight(l, " "))
		}
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := truncate.String(lines[maxLines-1], uint(limit-2))
		lines[maxLines-1] = last + " …"
	}
	return lines
}
