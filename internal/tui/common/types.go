package common

import (
	"foldercolor/internal/catalog"
	"foldercolor/pkg/types"

	"github.com/charmbracelet/bubbles/help"
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Rows() catalog.View
	Highlighted() int
	Active() int
	Searching() bool
	FilterText() string
	ErrorMessage() string
	// Confirming returns the candidate while the confirmation dialog is open.
	Confirming() (catalog.Visible, bool)
	Mode() types.Mode
	Keys() *types.KeyMap
	Help() help.Model
	Width() int
}
