// Package catalog holds the fixed, ordered list of folder color variants the
// picker offers, and the filtered views derived from it.
package catalog

import (
	"strconv"

	"foldercolor/internal/errors"

	"github.com/charmbracelet/lipgloss"
)

// Entry is one selectable folder color.
type Entry struct {
	Name  string
	Color lipgloss.Color
}

// Catalog is immutable once built. Order is the display order.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries, rejecting empty and duplicate names.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, errors.NewCatalogError("entry has no name", strconv.Itoa(i), errors.InvalidCatalog, nil)
		}
		if prev, dup := c.index[e.Name]; dup {
			return nil, errors.NewCatalogError("duplicate entry", e.Name, errors.InvalidCatalog,
				errors.Newf("already at index %d", prev))
		}
		c.entries[i] = e
		c.index[e.Name] = i
	}
	return c, nil
}

// Size returns the number of entries.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// EntryAt returns the entry at i, or an OutOfRange error.
func (c *Catalog) EntryAt(i int) (Entry, error) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, errors.NewCatalogError("catalog index out of range", strconv.Itoa(i), errors.OutOfRange,
			errors.Newf("size is %d", len(c.entries)))
	}
	return c.entries[i], nil
}

// IndexOf returns the index of the entry named name.
func (c *Catalog) IndexOf(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
