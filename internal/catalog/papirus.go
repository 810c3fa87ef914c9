package catalog

import (
	"foldercolor/internal/errors"

	"github.com/charmbracelet/lipgloss"
)

// papirusNames is the folder color list in the order papirus-folders prints it.
var papirusNames = []string{
	"adwaita", "black", "blue", "bluegrey", "breeze", "brown", "carmine",
	"cyan", "darkcyan", "deeporange", "green", "grey", "indigo", "magenta",
	"nordic", "orange", "palebrown", "paleorange", "pink", "red", "teal",
	"violet", "white", "yaru", "yellow",
}

// papirusPalette maps each folder color to the swatch drawn next to it.
var papirusPalette = map[string]lipgloss.Color{
	"adwaita":    "#93c0ea",
	"black":      "#4f4f4f",
	"blue":       "#5294e2",
	"bluegrey":   "#607d8b",
	"breeze":     "#57b8ec",
	"brown":      "#ae8e6c",
	"carmine":    "#a30002",
	"cyan":       "#00bcd4",
	"darkcyan":   "#45abb7",
	"deeporange": "#eb6637",
	"green":      "#87b158",
	"grey":       "#8e8e8e",
	"indigo":     "#5c6bc0",
	"magenta":    "#ca71df",
	"nordic":     "#81a1c1",
	"orange":     "#ee923a",
	"palebrown":  "#d1bfae",
	"paleorange": "#eeca8f",
	"pink":       "#f06292",
	"red":        "#e25252",
	"teal":       "#16a085",
	"violet":     "#7e57c2",
	"white":      "#e4e4e4",
	"yaru":       "#676767",
	"yellow":     "#f9bd30",
}

// Default returns the Papirus folder color catalog. Every name must have a
// palette entry; a gap is a build defect and is reported, not papered over.
func Default() (*Catalog, error) {
	return fromPalette(papirusNames, papirusPalette)
}

func fromPalette(names []string, palette map[string]lipgloss.Color) (*Catalog, error) {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		color, ok := palette[name]
		if !ok {
			return nil, errors.NewCatalogError("no display color for entry", name, errors.InvalidCatalog, nil)
		}
		entries = append(entries, Entry{Name: name, Color: color})
	}
	return New(entries...)
}
