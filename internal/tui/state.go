package tui

import "foldercolor/internal/catalog"

// selection is the session state. highlighted is always a valid catalog
// index; navigation moves it only among the entries of the current view.
type selection struct {
	active      int
	highlighted int
	filter      string
	searching   bool
	errMsg      string
}

func newSelection(active int) selection {
	return selection{
		active:      active,
		highlighted: active,
	}
}

// reanchor snaps highlighted to the first visible entry when a filter edit
// has hidden it. An empty view leaves it alone.
func (s *selection) reanchor(view catalog.View) {
	if len(view) > 0 && !view.Contains(s.highlighted) {
		s.highlighted = view[0].Index
	}
}

func (s *selection) moveUp(view catalog.View) {
	s.reanchor(view)
	if pos := view.Position(s.highlighted); pos > 0 {
		s.highlighted = view[pos-1].Index
	}
}

func (s *selection) moveDown(view catalog.View) {
	s.reanchor(view)
	if pos := view.Position(s.highlighted); pos >= 0 && pos < len(view)-1 {
		s.highlighted = view[pos+1].Index
	}
}

func (s *selection) toggleSearch() {
	s.searching = true
}

func (s *selection) typeChar(text string) {
	s.filter += text
}

func (s *selection) backspace() {
	r := []rune(s.filter)
	if len(r) > 0 {
		s.filter = string(r[:len(r)-1])
	}
}

func (s *selection) cancelSearch() {
	s.filter = ""
	s.searching = false
}

// confirmSearch leaves search mode with the filter still applied, keeping
// the highlighted entry if it is visible and otherwise taking the first one.
func (s *selection) confirmSearch(view catalog.View) bool {
	if len(view) == 0 {
		return false
	}
	s.reanchor(view)
	s.searching = false
	return true
}

func (s *selection) setError(msg string) {
	s.errMsg = msg
}

func (s *selection) clearError() {
	s.errMsg = ""
}
