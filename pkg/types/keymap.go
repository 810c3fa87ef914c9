package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the picker modes.
// It lives in pkg/types so the interpreter, the dialog and the views share it.
type KeyMap struct {
	// General. ForceQuit exits from every mode, including search and the
	// confirmation dialog, ahead of any mode-specific binding.
	ForceQuit key.Binding

	// Browsing
	Up     key.Binding
	Down   key.Binding
	Apply  key.Binding
	Search key.Binding
	Quit   key.Binding

	// Searching
	SearchUp     key.Binding // Arrow keys only; letters are filter text
	SearchDown   key.Binding
	Backspace    key.Binding
	CancelSearch key.Binding
	AcceptSearch key.Binding

	// Confirmation dialog
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		SearchUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		SearchDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		CancelSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		AcceptSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "cancel"),
		),
	}
}

// BrowseHelp lists the bindings shown in the footer while browsing.
func (k *KeyMap) BrowseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Apply, k.Quit}
}

// SearchHelp lists the bindings shown in the footer while searching.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.SearchUp, k.SearchDown, k.AcceptSearch, k.CancelSearch}
}

// DialogHelp lists the bindings shown inside the confirmation dialog.
func (k *KeyMap) DialogHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
