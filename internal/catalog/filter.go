package catalog

import "strings"

// Visible pairs an entry with its index in the full catalog.
type Visible struct {
	Index int
	Entry Entry
}

// View is the ordered subsequence of a catalog matching a filter.
type View []Visible

// Filter returns the entries whose names contain text, ignoring case, in
// catalog order. An empty text matches everything.
func Filter(c *Catalog, text string) View {
	needle := strings.ToLower(text)
	view := make(View, 0, len(c.entries))
	for i, e := range c.entries {
		if needle == "" || strings.Contains(strings.ToLower(e.Name), needle) {
			view = append(view, Visible{Index: i, Entry: e})
		}
	}
	return view
}

// Position returns where catalog index i sits in the view, or -1.
func (v View) Position(i int) int {
	for pos, vis := range v {
		if vis.Index == i {
			return pos
		}
	}
	return -1
}

// Contains reports whether catalog index i is visible.
func (v View) Contains(i int) bool {
	return v.Position(i) >= 0
}
