package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/view"
)

func runeKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok, "Update returned %T, want Model", next)
	return got
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = apply(t, m, runeKey(k))
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = apply(t, m, runeKey(string(r)))
	}
	return m
}

func newModel(t *testing.T, names ...string) (Model, *view.Controller) {
	t.Helper()
	ctrl := view.New(store.New())
	for _, n := range names {
		ctrl.SetInput(n)
		require.True(t, ctrl.AddTodo())
	}
	m := New(ctrl, nil)
	m = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, ctrl
}

func visible(m Model) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(listItem).Text)
	}
	return out
}

func titles(items []*model.Todo) []string {
	out := make([]string, 0, len(items))
	for _, td := range items {
		out = append(out, td.Title)
	}
	return out
}

func TestAddFlow(t *testing.T) {
	m, ctrl := newModel(t)
	m = press(t, m, "a")
	require.Equal(t, modeAdd, m.mode)

	m = typeText(t, m, "buy milk")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, []string{"buy milk"}, titles(ctrl.AllList()))
	assert.Equal(t, []string{"buy milk"}, visible(m))
}

func TestAddBlankShowsError(t *testing.T) {
	m, ctrl := newModel(t)
	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeAdd, m.mode)
	assert.Empty(t, ctrl.AllList())
	assert.Contains(t, m.View(), "Title cannot be empty")

	m = typeText(t, m, "x")
	assert.Empty(t, m.addErr)

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, []string{"x"}, titles(ctrl.AllList()))
}

func TestAddBlankThenEscLeavesAddMode(t *testing.T) {
	m, ctrl := newModel(t)
	m = press(t, m, "a")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeAdd, m.mode)

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.addErr)
	assert.Empty(t, ctrl.AllList())
	assert.NotContains(t, m.View(), "Title cannot be empty")
}

func TestAddEscKeepsDraft(t *testing.T) {
	m, ctrl := newModel(t)
	m = press(t, m, "a")
	m = typeText(t, m, "draft")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, ctrl.AllList())
	assert.Equal(t, "draft", ctrl.Input())

	m = press(t, m, "a")
	assert.Equal(t, "draft", m.ti.Value())
}

func TestToggleAndFilterTabs(t *testing.T) {
	m, ctrl := newModel(t, "a", "b", "c")
	m = press(t, m, "j") // cursor on b
	m = apply(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, ctrl.AllList()[1].Done)

	m = press(t, m, "2")
	assert.True(t, ctrl.IsFilter(view.Active))
	assert.Equal(t, []string{"a", "c"}, visible(m))

	m = press(t, m, "3")
	assert.Equal(t, []string{"b"}, visible(m))

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, ctrl.IsFilter(view.All))
	assert.Equal(t, []string{"a", "b", "c"}, visible(m))
}

func TestDeleteUsesSelectedItemInFilteredView(t *testing.T) {
	m, ctrl := newModel(t, "a", "b", "c")
	ctrl.AllList()[0].SetCompleted(true)
	m = press(t, m, "2") // active: b c
	m = press(t, m, "j") // cursor on c
	m = press(t, m, "d")

	assert.Equal(t, []string{"a", "b"}, titles(ctrl.AllList()))
	assert.Equal(t, []string{"b"}, visible(m))
}

func TestEditFlow(t *testing.T) {
	m, ctrl := newModel(t, "old")
	m = press(t, m, "e")
	require.Equal(t, modeEdit, m.mode)
	id := ctrl.AllList()[0].ID
	assert.True(t, ctrl.IsEditing(id))

	m = typeText(t, m, "er")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "older", ctrl.AllList()[0].Title)
	assert.False(t, ctrl.IsEditing(id))
	assert.Equal(t, []string{"older"}, visible(m))
}

func TestEditBlankRemoves(t *testing.T) {
	m, ctrl := newModel(t, "a", "b")
	m = press(t, m, "j", "e")
	for range "b" {
		m = apply(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"a"}, titles(ctrl.AllList()))
	assert.Equal(t, []string{"a"}, visible(m))
}

func TestEditEscCancels(t *testing.T) {
	m, ctrl := newModel(t, "keep")
	m = press(t, m, "e")
	m = typeText(t, m, "!!")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "keep", ctrl.AllList()[0].Title)
	assert.False(t, ctrl.IsEditing(ctrl.AllList()[0].ID))
}

func TestToggleAllAndClear(t *testing.T) {
	m, ctrl := newModel(t, "a", "b")
	m = press(t, m, "t")
	assert.True(t, ctrl.AllCompleted())
	assert.Contains(t, m.list.Title, "all done")

	m = press(t, m, "t")
	done, _ := ctrl.Counts()
	assert.Zero(t, done)

	m = apply(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = press(t, m, "c")
	assert.Equal(t, []string{"b"}, titles(ctrl.AllList()))
	assert.Equal(t, []string{"b"}, visible(m))
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsTabsAndInput(t *testing.T) {
	m, _ := newModel(t, "a")
	out := m.View()
	assert.Contains(t, out, "1 all")
	assert.Contains(t, out, "3 completed")

	m = press(t, m, "a")
	assert.Contains(t, m.View(), "Add new item")
}

func TestSetPlainDropsColour(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	lipgloss.SetColorProfile(termenv.TrueColor)
	SetPlain(false)
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())

	SetPlain(true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.Equal(t, "done", successStyle.Render("done"))
}
