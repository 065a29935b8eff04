package tui

import (
	"kittytask/internal/nav"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Home     key.Binding
	Tasks    key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Open  key.Binding
	Back  key.Binding

	AddGroup    key.Binding
	DupGroup    key.Binding
	RenameGroup key.Binding
	DeleteGroup key.Binding

	GroupColor    key.Binding
	DescribeGroup key.Binding

	AddTask    key.Binding
	DeleteTask key.Binding
	Toggle     key.Binding
	Priority   key.Binding
	RenameTask key.Binding
	Due        key.Binding

	DescribeTask key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Tasks:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "tasks")),
		Settings: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "settings")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),

		AddGroup:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add group")),
		DupGroup:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "duplicate")),
		RenameGroup: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "rename group")),
		DeleteGroup: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete group")),

		GroupColor:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "group color")),
		DescribeGroup: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "describe group")),

		AddTask:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		DeleteTask: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete task")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		Priority:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
		RenameTask: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Due:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "due date")),

		DescribeTask: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "describe task")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// pageKeys is the help.KeyMap for one page. Bindings outside the page are
// not listed.
type pageKeys struct {
	km      keyMap
	page    nav.Page
	editing bool
}

func (p pageKeys) ShortHelp() []key.Binding {
	if p.editing {
		return []key.Binding{p.km.Confirm, p.km.Cancel}
	}
	switch p.page {
	case nav.PageTaskList:
		return []key.Binding{p.km.Open, p.km.AddGroup, p.km.DeleteGroup, p.km.Help, p.km.Quit}
	case nav.PageGroupDetail:
		return []key.Binding{p.km.AddTask, p.km.Toggle, p.km.DeleteTask, p.km.Back, p.km.Help, p.km.Quit}
	default:
		return []key.Binding{p.km.Home, p.km.Tasks, p.km.Settings, p.km.Help, p.km.Quit}
	}
}

func (p pageKeys) FullHelp() [][]key.Binding {
	if p.editing {
		return [][]key.Binding{p.ShortHelp()}
	}
	pages := []key.Binding{p.km.Home, p.km.Tasks, p.km.Settings, p.km.Help, p.km.Quit}
	switch p.page {
	case nav.PageTaskList:
		return [][]key.Binding{
			{p.km.Up, p.km.Down, p.km.Left, p.km.Right, p.km.Open},
			{p.km.AddGroup, p.km.DupGroup, p.km.RenameGroup, p.km.DeleteGroup},
			pages,
		}
	case nav.PageGroupDetail:
		return [][]key.Binding{
			{p.km.Up, p.km.Down, p.km.Back},
			{p.km.AddTask, p.km.DeleteTask, p.km.Toggle, p.km.Priority, p.km.RenameTask},
			{p.km.Due, p.km.DescribeTask},
			{p.km.RenameGroup, p.km.GroupColor, p.km.DescribeGroup, p.km.DeleteGroup},
			pages,
		}
	default:
		return [][]key.Binding{pages}
	}
}
