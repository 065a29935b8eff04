package nav

import (
	"io"
	"strings"

	"kittytask/internal/catalog"
	"kittytask/internal/model"

	"github.com/charmbracelet/log"
)

// Navigator is the page state machine. It is the only writer of the active
// page and the bridge between UI events and the catalog: every mutation it
// performs ends with a rebuild of the page showing the result.
//
// Not safe for concurrent use; callers run it from one event loop.
type Navigator struct {
	catalog  *catalog.Catalog
	renderer Renderer
	log      *log.Logger

	strict   bool
	settings []Setting

	page    Page
	focused *model.Group
	slots   layout
	started bool
	builds  int
}

type Option func(*Navigator)

func WithLogger(l *log.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.log = l
		}
	}
}

// WithColumns sets the width of the group grid.
func WithColumns(cols int) Option {
	return func(n *Navigator) {
		if cols > 0 {
			n.slots.columns = cols
		}
	}
}

// WithStrictInvariants makes invariant violations panic instead of being logged.
func WithStrictInvariants(strict bool) Option {
	return func(n *Navigator) { n.strict = strict }
}

// WithSettings sets the rows shown on the settings page.
func WithSettings(settings []Setting) Option {
	return func(n *Navigator) { n.settings = append([]Setting(nil), settings...) }
}

// New returns a navigator on PageHome. Nothing is rendered until Start.
func New(c *catalog.Catalog, r Renderer, opts ...Option) *Navigator {
	if c == nil {
		c = catalog.New()
	}
	n := &Navigator{
		catalog:  c,
		renderer: r,
		log:      log.New(io.Discard),
		page:     PageHome,
		slots:    layout{columns: DefaultColumns},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Navigator) Catalog() *catalog.Catalog { return n.catalog }

func (n *Navigator) Page() Page { return n.page }

// FocusedGroup is the group shown on PageGroupDetail, nil on other pages.
func (n *Navigator) FocusedGroup() *model.Group { return n.focused }

func (n *Navigator) Columns() int { return n.slots.columns }

// Builds counts page builds since construction.
func (n *Navigator) Builds() int { return n.builds }

// IsActive reports whether p is the active page.
func (n *Navigator) IsActive(p Page) bool { return n.page == p }

// ActivePages returns every page currently marked active. With a single page
// value there is always exactly one.
func (n *Navigator) ActivePages() []Page {
	var out []Page
	for _, p := range Pages {
		if n.IsActive(p) {
			out = append(out, p)
		}
	}
	return out
}

// Start renders the initial page.
func (n *Navigator) Start() {
	n.show(n.page, n.focused, true)
}

// SwitchTo activates page. Switching to the page already shown (and, for
// PageGroupDetail, the same group) does nothing. A PageGroupDetail request
// for a group outside the catalog is ignored. It reports whether a rebuild
// happened.
func (n *Navigator) SwitchTo(page Page, group *model.Group) bool {
	return n.show(page, group, false)
}

func (n *Navigator) OnAddGroupPressed() *model.Group {
	return n.addGroup("")
}

func (n *Navigator) OnGroupSelected(g *model.Group) bool {
	return n.SwitchTo(PageGroupDetail, g)
}

func (n *Navigator) OnDeleteGroupPressed(g *model.Group) bool {
	if !n.catalog.DeleteGroup(g) {
		return false
	}
	n.log.Info("group deleted", "group", g.Name, "tasks", g.Len())
	return n.show(PageTaskList, nil, true)
}

func (n *Navigator) OnAddTaskPressed(g *model.Group) *model.Task {
	return n.addTask(g, "")
}

func (n *Navigator) OnDeleteTaskPressed(t *model.Task, g *model.Group) bool {
	if !n.catalog.DeleteTask(g, t) {
		return false
	}
	n.log.Info("task deleted", "task", t.ID, "group", g.Name)
	return n.show(PageGroupDetail, g, true)
}

func (n *Navigator) OnToggleTaskPressed(t *model.Task, g *model.Group) bool {
	if !n.owns(g, t) {
		return false
	}
	t.ToggleComplete()
	n.log.Info("task toggled", "task", t.ID, "group", g.Name, "complete", t.Complete)
	return n.show(PageGroupDetail, g, true)
}

func (n *Navigator) OnCyclePriorityPressed(t *model.Task, g *model.Group) bool {
	if !n.owns(g, t) {
		return false
	}
	t.Priority = t.Priority.Next()
	n.log.Info("task priority", "task", t.ID, "group", g.Name, "priority", t.Priority)
	return n.show(PageGroupDetail, g, true)
}

// OnRenameTask sets a task's name. Blank names are ignored.
func (n *Navigator) OnRenameTask(t *model.Task, g *model.Group, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || !n.owns(g, t) {
		return false
	}
	t.Name = name
	n.log.Info("task renamed", "task", t.ID, "group", g.Name, "name", name)
	return n.show(PageGroupDetail, g, true)
}

// OnRenameGroup sets a group's name and rebuilds the current page.
func (n *Navigator) OnRenameGroup(g *model.Group, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || !n.catalog.Contains(g) {
		return false
	}
	from := g.Name
	g.Name = name
	n.log.Info("group renamed", "from", from, "to", name)
	return n.rerender()
}

// OnSetGroupColor sets g's color. An invalid color changes nothing and
// renders nothing.
func (n *Navigator) OnSetGroupColor(g *model.Group, color string) bool {
	if !n.catalog.Contains(g) {
		return false
	}
	if err := g.SetColor(color); err != nil {
		n.log.Warn("group color rejected", "group", g.Name, "err", err)
		return false
	}
	n.log.Info("group color set", "group", g.Name, "color", g.Color)
	return n.rerender()
}

// OnDescribeGroup sets g's description. Blank text restores the default.
func (n *Navigator) OnDescribeGroup(g *model.Group, text string) bool {
	if !n.catalog.Contains(g) {
		return false
	}
	g.Description = describe(text)
	n.log.Info("group described", "group", g.Name)
	return n.rerender()
}

// OnSetTaskDue stores date as given; blank clears it.
func (n *Navigator) OnSetTaskDue(t *model.Task, g *model.Group, date string) bool {
	if !n.owns(g, t) {
		return false
	}
	t.DueDate = strings.TrimSpace(date)
	if t.DueDate == "" {
		t.DueDate = model.DueDateUnset
	}
	n.log.Info("task due set", "task", t.ID, "group", g.Name, "due", t.DueDate)
	return n.show(PageGroupDetail, g, true)
}

// OnDescribeTask sets a task's description. Blank text restores the default.
func (n *Navigator) OnDescribeTask(t *model.Task, g *model.Group, text string) bool {
	if !n.owns(g, t) {
		return false
	}
	t.Description = describe(text)
	n.log.Info("task described", "task", t.ID, "group", g.Name)
	return n.show(PageGroupDetail, g, true)
}

func describe(text string) string {
	if text = strings.TrimSpace(text); text == "" {
		return model.DefaultDescription
	}
	return text
}

func (n *Navigator) OnDuplicateGroupPressed(g *model.Group) *model.Group {
	dup := n.catalog.DuplicateGroup(g)
	if dup == nil {
		return nil
	}
	n.log.Info("group duplicated", "from", g.Name, "tasks", dup.Len())
	n.show(PageTaskList, nil, true)
	return dup
}

func (n *Navigator) addGroup(name string) *model.Group {
	g := n.catalog.CreateGroup(name)
	n.log.Info("group created", "group", g.Name, "id", g.ID)
	n.show(PageTaskList, nil, true)
	return g
}

func (n *Navigator) addTask(g *model.Group, name string) *model.Task {
	t := n.catalog.CreateTask(g, name)
	if t == nil {
		return nil
	}
	n.log.Info("task created", "task", t.ID, "group", g.Name)
	n.show(PageGroupDetail, g, true)
	return t
}

func (n *Navigator) owns(g *model.Group, t *model.Task) bool {
	if t == nil || !n.catalog.Contains(g) {
		return false
	}
	return g.Task(t.ID) == t
}

func (n *Navigator) rerender() bool {
	return n.show(n.page, n.focused, true)
}

// show is the single transition path. Unless force is set, a request for the
// page (and group) already shown is dropped.
func (n *Navigator) show(page Page, group *model.Group, force bool) bool {
	if !page.IsValid() {
		return false
	}
	if page != PageGroupDetail {
		group = nil
	} else if !n.catalog.Contains(group) {
		return false
	}
	if !force && n.started && page == n.page && group == n.focused {
		return false
	}

	from := n.page
	if n.renderer != nil {
		n.renderer.ClearPage()
	}
	n.page = page
	n.focused = group
	n.slots.reset()
	payload := buildPayload(n.catalog, page, group, &n.slots, n.settings)
	n.builds++
	n.started = true
	if n.renderer != nil {
		n.renderer.RenderPage(page, payload)
	}

	kv := []any{"from", from, "to", page, "forced", force}
	if group != nil {
		kv = append(kv, "group", group.Name)
	}
	n.log.Debug("page built", kv...)
	n.assertInvariants()
	return true
}
