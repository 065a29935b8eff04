package nav

import "kittytask/internal/model"

// Event is an inbound request from a UI or script. Group references accept a
// group id or a 1-based display position.
type Event interface {
	eventName() string
}

type Navigate struct {
	Page    Page
	GroupID string
}

type CreateGroup struct{ Name string }

type DeleteGroup struct{ GroupID string }

type DuplicateGroup struct{ GroupID string }

type RenameGroup struct {
	GroupID string
	Name    string
}

type CreateTask struct {
	GroupID string
	Name    string
}

type DeleteTask struct {
	GroupID string
	TaskID  int
}

type ToggleTask struct {
	GroupID string
	TaskID  int
}

type CyclePriority struct {
	GroupID string
	TaskID  int
}

type RenameTask struct {
	GroupID string
	TaskID  int
	Name    string
}

type SetGroupColor struct {
	GroupID string
	Color   string
}

type DescribeGroup struct {
	GroupID string
	Text    string
}

type SetTaskDue struct {
	GroupID string
	TaskID  int
	Date    string
}

type DescribeTask struct {
	GroupID string
	TaskID  int
	Text    string
}

func (Navigate) eventName() string       { return "navigate" }
func (CreateGroup) eventName() string    { return "create_group" }
func (DeleteGroup) eventName() string    { return "delete_group" }
func (DuplicateGroup) eventName() string { return "duplicate_group" }
func (RenameGroup) eventName() string    { return "rename_group" }
func (CreateTask) eventName() string     { return "create_task" }
func (DeleteTask) eventName() string     { return "delete_task" }
func (ToggleTask) eventName() string     { return "toggle_task" }
func (CyclePriority) eventName() string  { return "cycle_priority" }
func (RenameTask) eventName() string     { return "rename_task" }
func (SetGroupColor) eventName() string  { return "set_group_color" }
func (DescribeGroup) eventName() string  { return "describe_group" }
func (SetTaskDue) eventName() string     { return "set_task_due" }
func (DescribeTask) eventName() string   { return "describe_task" }

// Dispatch applies ev. References to missing groups or tasks are dropped
// silently. It reports whether the event changed anything visible.
func (n *Navigator) Dispatch(ev Event) bool {
	if ev == nil {
		return false
	}
	changed := n.dispatch(ev)
	n.log.Debug("event", "name", ev.eventName(), "changed", changed)
	return changed
}

func (n *Navigator) dispatch(ev Event) bool {
	switch e := ev.(type) {
	case Navigate:
		var g *model.Group
		if e.Page == PageGroupDetail {
			var ok bool
			if g, ok = n.catalog.Resolve(e.GroupID); !ok {
				return false
			}
		}
		return n.SwitchTo(e.Page, g)
	case CreateGroup:
		return n.addGroup(e.Name) != nil
	case DeleteGroup:
		g, ok := n.catalog.Resolve(e.GroupID)
		return ok && n.OnDeleteGroupPressed(g)
	case DuplicateGroup:
		g, ok := n.catalog.Resolve(e.GroupID)
		return ok && n.OnDuplicateGroupPressed(g) != nil
	case RenameGroup:
		g, ok := n.catalog.Resolve(e.GroupID)
		return ok && n.OnRenameGroup(g, e.Name)
	case CreateTask:
		g, ok := n.catalog.Resolve(e.GroupID)
		return ok && n.addTask(g, e.Name) != nil
	case DeleteTask:
		g, t := n.resolveTask(e.GroupID, e.TaskID)
		return t != nil && n.OnDeleteTaskPressed(t, g)
	case ToggleTask:
		g, t := n.resolveTask(e.GroupID, e.TaskID)
		return t != nil && n.OnToggleTaskPressed(t, g)
	case CyclePriority:
		g, t := n.resolveTask(e.GroupID, e.TaskID)
		return t != nil && n.OnCyclePriorityPressed(t, g)
	case RenameTask:
		g, t := n.resolveTask(e.GroupID, e.TaskID)
		return t != nil && n.OnRenameTask(t, g, e.Name)
	case SetGroupColor:
		g, ok := n.catalog.Resolve(e.GroupID)
		return ok && n.OnSetGroupColor(g, e.Color)
	case DescribeGroup:
		g, ok := n.catalog.Resolve(e.GroupID)
		return ok && n.OnDescribeGroup(g, e.Text)
	case SetTaskDue:
		g, t := n.resolveTask(e.GroupID, e.TaskID)
		return t != nil && n.OnSetTaskDue(t, g, e.Date)
	case DescribeTask:
		g, t := n.resolveTask(e.GroupID, e.TaskID)
		return t != nil && n.OnDescribeTask(t, g, e.Text)
	default:
		return false
	}
}

func (n *Navigator) resolveTask(groupID string, taskID int) (*model.Group, *model.Task) {
	g, ok := n.catalog.Resolve(groupID)
	if !ok {
		return nil, nil
	}
	return g, g.Task(taskID)
}
