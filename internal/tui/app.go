package tui

import (
	"kittytask/internal/catalog"
	"kittytask/internal/model"
	"kittytask/internal/nav"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptRenameGroup
	promptRenameTask
	promptGroupColor
	promptDescribeGroup
	promptTaskDue
	promptDescribeTask
)

func (k promptKind) label() string {
	switch k {
	case promptRenameTask:
		return "Rename task"
	case promptGroupColor:
		return "Color (#rrggbb)"
	case promptDescribeGroup:
		return "Group description"
	case promptTaskDue:
		return "Due (MM-DD-YYYY)"
	case promptDescribeTask:
		return "Task description"
	default:
		return "Rename group"
	}
}

func (k promptKind) charLimit() int {
	switch k {
	case promptDescribeGroup, promptDescribeTask:
		return 500
	case promptGroupColor:
		return 7
	case promptTaskDue:
		return 10
	default:
		return 80
	}
}

type appModel struct {
	nav    *nav.Navigator
	screen *screen

	keys  keyMap
	help  help.Model
	input textinput.Model
	rows  viewport.Model

	mdStyle string
	width   int
	height  int

	groupCursor int
	taskCursor  int

	prompt        promptKind
	promptGroupID string
	promptTaskID  int
}

func newAppModel(opts Options) appModel {
	sc := &screen{}
	n := nav.New(catalog.New(), sc,
		nav.WithLogger(opts.Logger),
		nav.WithColumns(opts.Columns),
		nav.WithStrictInvariants(opts.Strict),
		nav.WithSettings(opts.Settings),
	)

	in := textinput.New()
	in.Prompt = "› "
	in.CharLimit = 80

	m := appModel{
		nav:     n,
		screen:  sc,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   in,
		rows:    viewport.New(80, 10),
		mdStyle: markdownStyleFor(opts.Theme, opts.MarkdownStyle),
		width:   80,
		height:  24,
	}

	start := opts.StartPage
	if !start.IsValid() || start == nav.PageGroupDetail {
		start = nav.PageHome
	}
	n.SwitchTo(start, nil)
	m.sync()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keys
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, km.Home):
		m.dispatch(nav.Navigate{Page: nav.PageHome})
		return m, nil
	case key.Matches(msg, km.Tasks):
		m.dispatch(nav.Navigate{Page: nav.PageTaskList})
		return m, nil
	case key.Matches(msg, km.Settings):
		m.dispatch(nav.Navigate{Page: nav.PageSettings})
		return m, nil
	}

	switch m.nav.Page() {
	case nav.PageTaskList:
		return m.updateTaskList(msg)
	case nav.PageGroupDetail:
		return m.updateGroupDetail(msg)
	}
	return m, nil
}

func (m appModel) updateTaskList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keys
	cols := m.nav.Columns()
	id, selected := m.selectedGroupID()

	switch {
	case key.Matches(msg, km.Up):
		m.moveGroupCursor(-cols)
	case key.Matches(msg, km.Down):
		m.moveGroupCursor(cols)
	case key.Matches(msg, km.Left):
		m.moveGroupCursor(-1)
	case key.Matches(msg, km.Right):
		m.moveGroupCursor(1)
	case key.Matches(msg, km.AddGroup):
		if m.dispatch(nav.CreateGroup{}) {
			m.groupCursor = len(m.screen.payload.Groups) - 1
		}
	case !selected:
	case key.Matches(msg, km.Open):
		if m.dispatch(nav.Navigate{Page: nav.PageGroupDetail, GroupID: id}) {
			m.taskCursor = 0
			m.rows.SetYOffset(0)
		}
	case key.Matches(msg, km.DupGroup):
		if m.dispatch(nav.DuplicateGroup{GroupID: id}) {
			m.groupCursor++
		}
	case key.Matches(msg, km.DeleteGroup):
		m.dispatch(nav.DeleteGroup{GroupID: id})
	case key.Matches(msg, km.RenameGroup):
		cmd := m.startPrompt(promptRenameGroup, id, 0, m.screen.payload.Groups[m.groupCursor].Name)
		return m, cmd
	}
	m.sync()
	return m, nil
}

func (m appModel) updateGroupDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keys
	g := m.screen.payload.Group
	if g == nil {
		return m, nil
	}
	tasks := m.screen.payload.Tasks
	taskID := 0
	if m.taskCursor < len(tasks) {
		taskID = tasks[m.taskCursor].ID
	}

	switch {
	case key.Matches(msg, km.Back):
		m.dispatch(nav.Navigate{Page: nav.PageTaskList})
	case key.Matches(msg, km.Up):
		m.taskCursor--
	case key.Matches(msg, km.Down):
		m.taskCursor++
	case key.Matches(msg, km.AddTask):
		if m.dispatch(nav.CreateTask{GroupID: g.ID}) {
			m.taskCursor = len(m.screen.payload.Tasks) - 1
		}
	case key.Matches(msg, km.DeleteGroup):
		m.dispatch(nav.DeleteGroup{GroupID: g.ID})
	case key.Matches(msg, km.RenameGroup):
		cmd := m.startPrompt(promptRenameGroup, g.ID, 0, g.Name)
		return m, cmd
	case key.Matches(msg, km.GroupColor):
		cmd := m.startPrompt(promptGroupColor, g.ID, 0, g.Color)
		return m, cmd
	case key.Matches(msg, km.DescribeGroup):
		cmd := m.startPrompt(promptDescribeGroup, g.ID, 0, editableDescription(g.Description))
		return m, cmd
	case taskID == 0:
	case key.Matches(msg, km.DeleteTask):
		m.dispatch(nav.DeleteTask{GroupID: g.ID, TaskID: taskID})
	case key.Matches(msg, km.Toggle):
		m.dispatch(nav.ToggleTask{GroupID: g.ID, TaskID: taskID})
	case key.Matches(msg, km.Priority):
		m.dispatch(nav.CyclePriority{GroupID: g.ID, TaskID: taskID})
	case key.Matches(msg, km.RenameTask):
		cmd := m.startPrompt(promptRenameTask, g.ID, taskID, tasks[m.taskCursor].Name)
		return m, cmd
	case key.Matches(msg, km.Due):
		cmd := m.startPrompt(promptTaskDue, g.ID, taskID, tasks[m.taskCursor].DueDate)
		return m, cmd
	case key.Matches(msg, km.DescribeTask):
		cmd := m.startPrompt(promptDescribeTask, g.ID, taskID, editableDescription(tasks[m.taskCursor].Description))
		return m, cmd
	}
	m.sync()
	return m, nil
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.endPrompt()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		value := m.input.Value()
		gid, tid := m.promptGroupID, m.promptTaskID
		switch m.prompt {
		case promptRenameGroup:
			m.dispatch(nav.RenameGroup{GroupID: gid, Name: value})
		case promptRenameTask:
			m.dispatch(nav.RenameTask{GroupID: gid, TaskID: tid, Name: value})
		case promptGroupColor:
			m.dispatch(nav.SetGroupColor{GroupID: gid, Color: value})
		case promptDescribeGroup:
			m.dispatch(nav.DescribeGroup{GroupID: gid, Text: value})
		case promptTaskDue:
			m.dispatch(nav.SetTaskDue{GroupID: gid, TaskID: tid, Date: value})
		case promptDescribeTask:
			m.dispatch(nav.DescribeTask{GroupID: gid, TaskID: tid, Text: value})
		}
		m.endPrompt()
		m.sync()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *appModel) dispatch(ev nav.Event) bool {
	changed := m.nav.Dispatch(ev)
	m.sync()
	return changed
}

func (m *appModel) startPrompt(kind promptKind, groupID string, taskID int, current string) tea.Cmd {
	m.prompt = kind
	m.promptGroupID = groupID
	m.promptTaskID = taskID
	m.input.CharLimit = kind.charLimit()
	m.input.SetValue(current)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *appModel) endPrompt() {
	m.prompt = promptNone
	m.promptGroupID = ""
	m.promptTaskID = 0
	m.input.Blur()
	m.input.Reset()
}

// editableDescription starts the description prompt empty instead of on the
// placeholder text.
func editableDescription(desc string) string {
	if desc == model.DefaultDescription {
		return ""
	}
	return desc
}

func (m *appModel) selectedGroupID() (string, bool) {
	groups := m.screen.payload.Groups
	if m.groupCursor < 0 || m.groupCursor >= len(groups) {
		return "", false
	}
	return groups[m.groupCursor].ID, true
}

func (m *appModel) moveGroupCursor(delta int) {
	next := m.groupCursor + delta
	if next < 0 || next >= len(m.screen.payload.Groups) {
		return
	}
	m.groupCursor = next
}

// sync clamps cursors to the current payload and refreshes the task rows.
func (m *appModel) sync() {
	m.groupCursor = clamp(m.groupCursor, len(m.screen.payload.Groups))
	m.taskCursor = clamp(m.taskCursor, len(m.screen.payload.Tasks))

	m.rows.Width = max(m.width-4, 20)
	m.rows.Height = max(m.height-rowsChromeHeight, 3)
	m.rows.SetContent(m.renderTaskRows(m.rows.Width))
	switch {
	case m.taskCursor < m.rows.YOffset:
		m.rows.SetYOffset(m.taskCursor)
	case m.taskCursor >= m.rows.YOffset+m.rows.Height:
		m.rows.SetYOffset(m.taskCursor - m.rows.Height + 1)
	}
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
