package tui

import (
	"unicode"

	"foldercolor/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// InputContext is the part of the session state that changes what a key means.
type InputContext struct {
	Searching bool
	Visible   int // entries in the current view
}

// Interpret turns one key press into an action. It never touches state.
func Interpret(msg tea.KeyMsg, ctx InputContext, keys *types.KeyMap) types.Input {
	if key.Matches(msg, keys.ForceQuit) {
		return types.Input{Action: types.Exit}
	}
	if ctx.Searching {
		return interpretSearch(msg, ctx, keys)
	}
	return interpretBrowse(msg, keys)
}

func interpretBrowse(msg tea.KeyMsg, keys *types.KeyMap) types.Input {
	switch {
	case key.Matches(msg, keys.Up):
		return types.Input{Action: types.MoveUp}
	case key.Matches(msg, keys.Down):
		return types.Input{Action: types.MoveDown}
	case key.Matches(msg, keys.Apply):
		return types.Input{Action: types.Apply}
	case key.Matches(msg, keys.Search):
		return types.Input{Action: types.ToggleSearch}
	case key.Matches(msg, keys.Quit):
		return types.Input{Action: types.Exit}
	}
	return types.Input{Action: types.None}
}

func interpretSearch(msg tea.KeyMsg, ctx InputContext, keys *types.KeyMap) types.Input {
	switch {
	case key.Matches(msg, keys.CancelSearch):
		return types.Input{Action: types.CancelSearch}
	case key.Matches(msg, keys.AcceptSearch):
		if ctx.Visible > 0 {
			return types.Input{Action: types.ConfirmSearchSelection}
		}
		return types.Input{Action: types.None}
	case key.Matches(msg, keys.Backspace):
		return types.Input{Action: types.Backspace}
	case key.Matches(msg, keys.SearchUp):
		return types.Input{Action: types.MoveUp}
	case key.Matches(msg, keys.SearchDown):
		return types.Input{Action: types.MoveDown}
	}
	if text := printable(msg); text != "" {
		return types.Input{Action: types.TypeChar, Char: text}
	}
	return types.Input{Action: types.None}
}

// printable returns the text a key press would type, or "".
func printable(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		if msg.Alt {
			return ""
		}
		out := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				out = append(out, r)
			}
		}
		return string(out)
	}
	return ""
}
