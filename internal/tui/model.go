package tui

import (
	"foldercolor/internal/catalog"
	"foldercolor/internal/log"
	"foldercolor/internal/tui/components"
	"foldercolor/internal/tui/messages"
	"foldercolor/internal/tui/views"
	"foldercolor/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Applier runs the external apply step for one entry. The returned command
// must eventually produce done(err), with err nil on success.
type Applier interface {
	Apply(name string, done func(error) tea.Msg) tea.Cmd
}

type Model struct {
	// Core state
	catalog *catalog.Catalog
	keys    *types.KeyMap
	help    help.Model
	applier Applier
	state   selection

	// Session phase. Searching is tracked by state and reported by Mode.
	mode   types.Mode
	dialog *components.ConfirmDialog

	// Result
	outcome types.Outcome
	applied string

	width int
}

// New builds a picker over cat with active as the currently applied entry.
// An active index outside the catalog falls back to the first entry.
func New(cat *catalog.Catalog, active int, applier Applier) *Model {
	if active < 0 || active >= cat.Size() {
		log.Warnf("active index %d out of range, using 0", active)
		active = 0
	}
	return &Model{
		catalog: cat,
		keys:    types.DefaultKeyMap(),
		help:    help.New(),
		applier: applier,
		state:   newSelection(active),
		mode:    types.Browsing,
	}
}

// SetKeys replaces the key map.
func (m *Model) SetKeys(keys *types.KeyMap) {
	if keys != nil {
		m.keys = keys
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.mode == types.Terminated {
		return ""
	}
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case messages.ApplyResultMsg:
		return m.handleApplyResult(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case types.Applying, types.Terminated:
		return m, nil
	case types.Confirming:
		return m.handleDialogKeys(msg)
	}

	view := m.Rows()
	m.state.reanchor(view)
	in := Interpret(msg, InputContext{Searching: m.state.searching, Visible: len(view)}, m.keys)
	log.Debugf("key %q -> %s", msg.String(), in.Action)
	return m.dispatch(in, view)
}

func (m *Model) dispatch(in types.Input, view catalog.View) (tea.Model, tea.Cmd) {
	switch in.Action {
	case types.MoveUp:
		m.state.clearError()
		m.state.moveUp(view)
	case types.MoveDown:
		m.state.clearError()
		m.state.moveDown(view)
	case types.ToggleSearch:
		m.state.clearError()
		m.state.toggleSearch()
	case types.TypeChar:
		m.state.typeChar(in.Char)
		m.state.reanchor(m.Rows())
	case types.Backspace:
		m.state.backspace()
		m.state.reanchor(m.Rows())
	case types.CancelSearch:
		m.state.cancelSearch()
		m.state.reanchor(m.Rows())
	case types.ConfirmSearchSelection:
		m.state.confirmSearch(view)
	case types.Apply:
		m.openDialog(view)
	case types.Exit:
		return m.exit()
	}
	return m, nil
}

func (m *Model) openDialog(view catalog.View) {
	pos := view.Position(m.state.highlighted)
	if pos < 0 {
		return
	}
	m.dialog = components.NewConfirmDialog(view[pos])
	m.mode = types.Confirming
}

func (m *Model) handleDialogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.exit()
	}

	switch m.dialog.HandleKey(msg, m.keys) {
	case components.DialogConfirmed:
		return m, m.startApply(m.dialog.Candidate.Entry.Name)
	case components.DialogCancelled:
		m.dialog = nil
		m.mode = types.Browsing
	}
	return m, nil
}

func (m *Model) startApply(name string) tea.Cmd {
	m.state.clearError()
	m.dialog = nil
	m.mode = types.Applying
	log.LogWithFields(log.F("color", name)).Info("applying folder color")

	return m.applier.Apply(name, func(err error) tea.Msg {
		return messages.ApplyResultMsg{Name: name, Err: err}
	})
}

func (m *Model) handleApplyResult(msg messages.ApplyResultMsg) (tea.Model, tea.Cmd) {
	if m.mode != types.Applying {
		return m, nil
	}
	if msg.Err != nil {
		log.LogError(msg.Err, "apply failed")
		m.state.setError(msg.Err.Error())
		m.mode = types.Browsing
		return m, nil
	}

	log.LogWithFields(log.F("color", msg.Name)).Info("folder color applied")
	m.applied = msg.Name
	m.outcome = types.OutcomeApplied
	m.mode = types.Terminated
	return m, tea.Quit
}

func (m *Model) exit() (tea.Model, tea.Cmd) {
	m.dialog = nil
	m.outcome = types.OutcomeCancelled
	m.mode = types.Terminated
	return m, tea.Quit
}

// Rows returns the entries that pass the current filter.
func (m *Model) Rows() catalog.View {
	return catalog.Filter(m.catalog, m.state.filter)
}

func (m *Model) Highlighted() int     { return m.state.highlighted }
func (m *Model) Active() int          { return m.state.active }
func (m *Model) Searching() bool      { return m.state.searching }
func (m *Model) FilterText() string   { return m.state.filter }
func (m *Model) ErrorMessage() string { return m.state.errMsg }
func (m *Model) Keys() *types.KeyMap  { return m.keys }
func (m *Model) Help() help.Model     { return m.help }
func (m *Model) Width() int           { return m.width }

// Mode reports the session phase, with Searching split out of Browsing.
func (m *Model) Mode() types.Mode {
	if m.mode == types.Browsing && m.state.searching {
		return types.Searching
	}
	return m.mode
}

func (m *Model) Confirming() (catalog.Visible, bool) {
	if m.mode != types.Confirming || m.dialog == nil {
		return catalog.Visible{}, false
	}
	return m.dialog.Candidate, true
}

func (m *Model) Outcome() types.Outcome { return m.outcome }

// Applied is the name of the entry applied this session, if any.
func (m *Model) Applied() string { return m.applied }
