package views

import (
	"strings"
	"testing"

	"foldercolor/internal/catalog"
	"foldercolor/pkg/testutils"
	"foldercolor/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock model for testing
type mockModel struct {
	rows        catalog.View
	highlighted int
	active      int
	searching   bool
	filter      string
	errMsg      string
	confirming  *catalog.Visible
	width       int
}

func (m *mockModel) Rows() catalog.View   { return m.rows }
func (m *mockModel) Highlighted() int     { return m.highlighted }
func (m *mockModel) Active() int          { return m.active }
func (m *mockModel) Searching() bool      { return m.searching }
func (m *mockModel) FilterText() string   { return m.filter }
func (m *mockModel) ErrorMessage() string { return m.errMsg }
func (m *mockModel) Keys() *types.KeyMap  { return types.DefaultKeyMap() }
func (m *mockModel) Help() help.Model     { return help.New() }
func (m *mockModel) Width() int           { return m.width }

func (m *mockModel) Mode() types.Mode {
	if m.searching {
		return types.Searching
	}
	return types.Browsing
}

func (m *mockModel) Confirming() (catalog.Visible, bool) {
	if m.confirming == nil {
		return catalog.Visible{}, false
	}
	return *m.confirming, true
}

func testRows() catalog.View {
	return catalog.View{
		{Index: 0, Entry: catalog.Entry{Name: "red", Color: "#e25252"}},
		{Index: 1, Entry: catalog.Entry{Name: "green", Color: "#87b158"}},
		{Index: 2, Entry: catalog.Entry{Name: "blue", Color: "#5294e2"}},
	}
}

func lineWith(t *testing.T, out, name string) string {
	t.Helper()
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, " "+name+" ") || strings.HasSuffix(l, " "+name) {
			return l
		}
	}
	require.Failf(t, "row not found", "no line for %q in:\n%s", name, out)
	return ""
}

func TestRenderMainView(t *testing.T) {
	tests := []struct {
		name     string
		model    *mockModel
		contains []string
		excludes []string
	}{
		{
			name:  "browsing",
			model: &mockModel{rows: testRows(), highlighted: 2, active: 1},
			contains: []string{
				"Papirus Folder Color Switcher",
				"press enter to apply",
				"red", "green", "blue",
				"(active)",
				"search",
				"quit",
			},
			excludes: []string{"█", "no matching colors"},
		},
		{
			name:     "searching",
			model:    &mockModel{rows: testRows()[2:], highlighted: 2, active: 1, searching: true, filter: "bl"},
			contains: []string{"/ bl█", "Type to filter", "clear search"},
			excludes: []string{"green", "(active)"},
		},
		{
			name:     "filter kept while browsing",
			model:    &mockModel{rows: testRows()[2:], highlighted: 2, filter: "bl"},
			contains: []string{"filter: bl", "press enter to apply", "/ search"},
			excludes: []string{"█", "Type to filter", "clear search"},
		},
		{
			name:     "empty view",
			model:    &mockModel{rows: catalog.View{}, searching: true, filter: "zzz"},
			contains: []string{"no matching colors", "/ zzz█"},
		},
		{
			name:     "error box",
			model:    &mockModel{rows: testRows(), errMsg: "Error: not found"},
			contains: []string{"Error: not found", "╭", "╰"},
		},
		{
			name: "confirmation dialog",
			model: &mockModel{rows: testRows(), width: 80, confirming: &catalog.Visible{
				Index: 2, Entry: catalog.Entry{Name: "blue", Color: "#5294e2"},
			}},
			contains: []string{"Apply folder color?", "■■ blue", "cancel"},
			excludes: []string{"green"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := testutils.StripANSI(RenderMainView(tt.model))
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderRowMarkers(t *testing.T) {
	m := &mockModel{rows: testRows(), highlighted: 2, active: 1}
	out := testutils.StripANSI(RenderList(m))

	blue := lineWith(t, out, "blue")
	assert.True(t, strings.HasPrefix(blue, "›"), blue)
	assert.NotContains(t, blue, "(active)")

	green := lineWith(t, out, "green")
	assert.False(t, strings.HasPrefix(green, "›"), green)
	assert.Contains(t, green, "(active)")

	red := lineWith(t, out, "red")
	assert.False(t, strings.HasPrefix(red, "›"))
	assert.NotContains(t, red, "(active)")

	// Marker, swatch, name, active marker in that order.
	assert.Less(t, strings.Index(green, "■■"), strings.Index(green, "green"))
	assert.Less(t, strings.Index(green, "green"), strings.Index(green, "(active)"))
}

func TestRenderSameRowHighlightedAndActive(t *testing.T) {
	m := &mockModel{rows: testRows(), highlighted: 0, active: 0}
	red := lineWith(t, testutils.StripANSI(RenderList(m)), "red")
	assert.True(t, strings.HasPrefix(red, "›"))
	assert.Contains(t, red, "(active)")
}

func TestRenderIsDeterministic(t *testing.T) {
	m := &mockModel{rows: testRows(), highlighted: 1, active: 1, errMsg: "boom"}
	assert.Equal(t, RenderMainView(m), RenderMainView(m))
}
