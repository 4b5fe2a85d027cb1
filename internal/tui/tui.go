// Package tui is the interactive Bubble Tea front end. Every mutation goes
// through the view controller; the list widget is rebuilt from
// Controller.CurrentList afterwards.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/todolist/internal/ui"
	"github.com/idilsaglam/todolist/internal/view"
)

// listItem adapts a todo to bubbles/list.Item
type listItem struct {
	ID   uuid.UUID
	Text string
	Done bool
}

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type Model struct {
	ctrl   *view.Controller
	logger *slog.Logger
	keys   keyMap

	list list.Model
	ti   textinput.Model // shared text input (add & edit)
	mode mode

	editID uuid.UUID
	addErr string

	width, height int
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	theme := ui.Current()
	box := mutedStyle.Render(theme.BoxUnchecked)
	text := it.Text
	if it.Done {
		box = successStyle.Render(theme.BoxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

// New builds the model. logger may be nil.
func New(ctrl *view.Controller, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full
	// Quitting is handled here so esc can also leave input mode.
	l.KeyMap.Quit.SetEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		ctrl:   ctrl,
		logger: logger,
		keys:   keys,
		list:   l,
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.resize()
	m.refresh()
	return m
}

// SetPlain drops every lipgloss colour so the TUI follows --color never and
// the mono theme.
func SetPlain(plain bool) {
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Run starts the Bubble Tea program on the alternate screen.
func Run(ctrl *view.Controller, logger *slog.Logger) error {
	p := tea.NewProgram(New(ctrl, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// refresh rebuilds the list items and header from the controller.
func (m *Model) refresh() {
	todos := m.ctrl.CurrentList()
	items := make([]list.Item, 0, len(todos))
	for _, td := range todos {
		items = append(items, listItem{ID: td.ID, Text: td.Title, Done: td.Done})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = m.header()
}

func (m Model) header() string {
	theme := ui.Current()
	dn, pn := m.ctrl.Counts()
	h := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render(theme.SymDone), dn,
		pendingStyle.Render(theme.SymPending), pn,
		accentStyle.Render("Total"), dn+pn,
	)
	if dn+pn > 0 && m.ctrl.AllCompleted() {
		h += "  " + successStyle.Render("all done")
	}
	return h
}

func (m Model) tabs() string {
	parts := make([]string, 0, len(view.Filters))
	for i, f := range view.Filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if m.ctrl.IsFilter(f) {
			parts = append(parts, activeTab.Render(label))
		} else {
			parts = append(parts, mutedStyle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m *Model) resize() {
	h := m.height - 6 // panel border, tabs line
	if m.mode != modeList {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width-4, h)
}

// selected returns the todo under the cursor, if any.
func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeEdit:
		return m.updateEdit(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(km, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				m.ctrl.Toggle(it.ID)
				m.refresh()
			}
			return m, nil

		case key.Matches(km, m.keys.Delete):
			if it, ok := m.selected(); ok {
				m.ctrl.Remove(it.ID)
				m.refresh()
			}
			return m, nil

		case key.Matches(km, m.keys.Clear):
			m.ctrl.RemoveAllCompleted()
			m.refresh()
			return m, nil

		case key.Matches(km, m.keys.ToggleAll):
			m.ctrl.SetAllTo(!m.ctrl.AllCompleted())
			m.refresh()
			return m, nil

		case key.Matches(km, m.keys.NextFilter):
			return m.setFilter(m.ctrl.Filter().Next())
		case key.Matches(km, m.keys.ShowAll):
			return m.setFilter(view.All)
		case key.Matches(km, m.keys.ShowActive):
			return m.setFilter(view.Active)
		case key.Matches(km, m.keys.ShowDone):
			return m.setFilter(view.Completed)

		case key.Matches(km, m.keys.Add):
			m.mode = modeAdd
			m.ti.SetValue(m.ctrl.Input())
			m.ti.Placeholder = "New item title..."
			m.resize()
			cmd := m.ti.Focus()
			return m, cmd

		case key.Matches(km, m.keys.Edit):
			it, ok := m.selected()
			if !ok || !m.ctrl.BeginEdit(it.ID) {
				return m, nil
			}
			m.mode = modeEdit
			m.editID = it.ID
			m.ti.SetValue(it.Text)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Empty title deletes the item"
			m.resize()
			cmd := m.ti.Focus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) setFilter(f view.Filter) (tea.Model, tea.Cmd) {
	m.ctrl.SetFilter(f)
	m.list.Select(0)
	m.refresh()
	return m, nil
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Commit):
			if strings.TrimSpace(m.ti.Value()) == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			m.ctrl.SetInput(m.ti.Value())
			added := m.ctrl.AddTodo()
			m.leaveInput()
			m.refresh()
			if added {
				m.list.Select(len(m.list.Items()) - 1)
			}
			return m, nil
		case key.Matches(km, m.keys.CancelInput):
			// keep the draft so the next add starts from it
			m.ctrl.SetInput(m.ti.Value())
			m.leaveInput()
			return m, nil
		}
		m.addErr = ""
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Commit):
			if !m.ctrl.CommitEdit(m.editID, m.ti.Value()) {
				m.logger.Debug("edit not applied", "id", m.editID)
			}
			m.editID = uuid.Nil
			m.leaveInput()
			m.refresh()
			return m, nil
		case key.Matches(km, m.keys.CancelInput):
			m.ctrl.CancelEdit(m.editID)
			m.editID = uuid.Nil
			m.leaveInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	content := m.tabs() + "\n" + m.list.View()
	if m.mode != modeList {
		title := "Add new item"
		if m.mode == modeEdit {
			title = "Edit item"
		}
		if m.addErr != "" {
			title += ": " + errorStyle.Render(m.addErr)
		}
		content += "\n" + panelStyle.Render(title+"\n"+m.ti.View())
	}
	return panelStyle.Render(content)
}
