package tui

import (
	"testing"

	"kittytask/internal/model"
	"kittytask/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) appModel {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	m := newAppModel(Options{Columns: 3, Theme: "none", Strict: true})
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(appModel)
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "ctrl+u":
			msg = tea.KeyMsg{Type: tea.KeyCtrlU}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		mm, _ := m.Update(msg)
		m = mm.(appModel)
	}
	return m
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return mm.(appModel)
}

// answer replaces the prompt's current value with s and confirms it.
func answer(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	require.NotEqual(t, promptNone, m.prompt, "no prompt open")
	m = press(t, m, "ctrl+u")
	if s != "" {
		m = typeText(t, m, s)
	}
	return press(t, m, "enter")
}

func TestStartsOnConfiguredPage(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m := newAppModel(Options{StartPage: nav.PageSettings})
	assert.Equal(t, nav.PageSettings, m.nav.Page())

	m = newAppModel(Options{StartPage: nav.PageGroupDetail})
	assert.Equal(t, nav.PageHome, m.nav.Page(), "group_detail falls back to home")
}

func TestPageKeysSwitchPages(t *testing.T) {
	m := newTestApp(t)

	m = press(t, m, "2")
	assert.Equal(t, nav.PageTaskList, m.nav.Page())
	m = press(t, m, "3")
	assert.Equal(t, nav.PageSettings, m.nav.Page())

	renders := m.screen.renders
	m = press(t, m, "3")
	assert.Equal(t, renders, m.screen.renders, "re-selecting the active page rebuilt it")

	m = press(t, m, "1")
	assert.Equal(t, nav.PageHome, m.nav.Page())
}

func TestAddOpenAndDeleteGroup(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "2", "a", "a", "a")
	require.Len(t, m.screen.payload.Groups, 3)
	assert.Equal(t, 2, m.groupCursor, "cursor follows the new group")

	m = press(t, m, "h", "enter")
	require.Equal(t, nav.PageGroupDetail, m.nav.Page())
	assert.Equal(t, "Group #2", m.nav.FocusedGroup().Name)

	m = press(t, m, "D")
	assert.Equal(t, nav.PageTaskList, m.nav.Page())
	assert.Equal(t, 2, m.nav.Catalog().Len())
}

func TestGridCursorMovesByColumns(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "2", "a", "a", "a", "a")
	m.groupCursor = 0

	m = press(t, m, "down")
	assert.Equal(t, 3, m.groupCursor)
	m = press(t, m, "down")
	assert.Equal(t, 3, m.groupCursor, "stays on the last row")
	m = press(t, m, "k", "right", "right")
	assert.Equal(t, 2, m.groupCursor)
}

func TestTaskKeys(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "2", "a", "enter", "a", "a")

	require.Len(t, m.screen.payload.Tasks, 2)
	assert.Equal(t, 1, m.taskCursor, "cursor follows the new task")

	m = press(t, m, "space", "p", "p")
	row := m.screen.payload.Tasks[1]
	assert.True(t, row.Complete)
	assert.Equal(t, model.PriorityHigh, row.Priority)

	m = press(t, m, "k", "x")
	tasks := m.screen.payload.Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].ID)

	m = press(t, m, "esc")
	assert.Equal(t, nav.PageTaskList, m.nav.Page())
}

func TestRenamePrompt(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "2", "a", "enter", "a", "r")
	require.Equal(t, promptRenameTask, m.prompt)

	m = answer(t, m, "Water plants")
	assert.Equal(t, promptNone, m.prompt)
	assert.Equal(t, "Water plants", m.screen.payload.Tasks[0].Name)

	m = press(t, m, "R")
	m = typeText(t, m, "!!")
	m = press(t, m, "esc")
	assert.Equal(t, "Group #1", m.screen.payload.Group.Name, "cancelled rename")
	assert.Equal(t, nav.PageGroupDetail, m.nav.Page(), "esc in a prompt stays on the page")
}

func TestGroupColorAndDescriptionPrompts(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "2", "a", "enter")

	m = press(t, m, "c")
	require.Equal(t, promptGroupColor, m.prompt)
	assert.Equal(t, model.DefaultColor, m.input.Value())
	m = answer(t, m, "#FF8800")
	assert.Equal(t, "#ff8800", m.screen.payload.Group.Color)

	m = press(t, m, "c")
	m = answer(t, m, "orange")
	assert.Equal(t, "#ff8800", m.screen.payload.Group.Color, "invalid color ignored")

	m = press(t, m, "e")
	require.Equal(t, promptDescribeGroup, m.prompt)
	assert.Empty(t, m.input.Value(), "placeholder is not offered for editing")
	m = answer(t, m, "Chores for **Saturday**")
	assert.Equal(t, "Chores for **Saturday**", m.screen.payload.Group.Description)

	out := xansi.Strip(m.View())
	assert.Contains(t, out, "Saturday")
	assert.NotContains(t, out, model.DefaultDescription)
}

func TestTaskDueAndDescriptionPrompts(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "2", "a", "enter", "a")

	m = press(t, m, "d")
	require.Equal(t, promptTaskDue, m.prompt)
	m = answer(t, m, "01-02-2026")
	assert.Equal(t, "01-02-2026", m.screen.payload.Tasks[0].DueDate)

	m = press(t, m, "E")
	require.Equal(t, promptDescribeTask, m.prompt)
	m = answer(t, m, "Bring the receipt")
	assert.Equal(t, "Bring the receipt", m.screen.payload.Tasks[0].Description)

	out := xansi.Strip(m.View())
	assert.Contains(t, out, "due 01-02-2026")
	assert.Contains(t, out, "Bring the receipt")

	m = press(t, m, "d")
	m = answer(t, m, "")
	assert.Equal(t, model.DueDateUnset, m.screen.payload.Tasks[0].DueDate, "empty answer clears")
}

func TestDuplicateGroupKey(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "2", "a", "y")
	groups := m.screen.payload.Groups
	require.Len(t, groups, 2)
	assert.Equal(t, "Group #1 (copy)", groups[1].Name)
	assert.Equal(t, 1, m.groupCursor, "cursor on the copy")
}

func TestViewRendersEachPage(t *testing.T) {
	m := newTestApp(t)
	assert.Contains(t, m.View(), "0 groups")

	m = press(t, m, "2")
	assert.Contains(t, m.View(), "No groups yet")

	m = press(t, m, "a", "a", "a", "a")
	out := xansi.Strip(m.View())
	for _, name := range []string{"Group #1", "Group #3", "Group #4"} {
		assert.Contains(t, out, name)
	}

	m = press(t, m, "enter", "a")
	out = xansi.Strip(m.View())
	assert.Contains(t, out, "Tasks › ")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, model.DefaultDescription)

	m = press(t, m, "3")
	assert.Contains(t, m.View(), "yet to be implemented")
}

func TestQuit(t *testing.T) {
	m := newTestApp(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
