package styles

import (
	"foldercolor/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds every style the picker draws with.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Hint         lipgloss.Style
	Cursor       lipgloss.Style
	Name         lipgloss.Style
	Highlighted  lipgloss.Style
	ActiveMarker lipgloss.Style
	Search       lipgloss.Style
	SearchCursor lipgloss.Style
	Dim          lipgloss.Style
	ErrorBox     lipgloss.Style
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	Help         lipgloss.Style
}

// Theme defines the core UI styles
var Theme = New(config.GetTheme("default"))

// Use switches Theme to the named accent palette.
func Use(name string) {
	Theme = New(config.GetTheme(name))
}

// New builds styles from an accent palette as returned by config.GetTheme.
func New(palette map[string]string) Styles {
	primary := lipgloss.Color(palette["primary"])
	success := lipgloss.Color(palette["success"])
	errColor := lipgloss.Color(palette["error"])
	info := lipgloss.Color(palette["info"])
	emphasis := lipgloss.Color(palette["emphasis"])
	border := lipgloss.Color(palette["border"])

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(border).
			Padding(0, 7),
		Hint: lipgloss.NewStyle().
			Foreground(info).
			MarginBottom(1),
		Cursor: lipgloss.NewStyle().
			Foreground(emphasis).
			Bold(true),
		Name: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")),
		Highlighted: lipgloss.NewStyle().
			Foreground(emphasis).
			Bold(true),
		ActiveMarker: lipgloss.NewStyle().
			Foreground(success).
			Italic(true),
		Search: lipgloss.NewStyle().
			Foreground(primary),
		SearchCursor: lipgloss.NewStyle().
			Foreground(emphasis),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		ErrorBox: lipgloss.NewStyle().
			Foreground(errColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errColor).
			Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 3),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9")),
	}
}

// Swatch renders the color sample shown next to an entry.
func Swatch(color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render("■■")
}
