package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"kittytask/internal/model"

	"github.com/google/uuid"
)

// Catalog owns every group for the lifetime of the process. It allocates task
// ids from one process-wide counter, so ids are unique across groups and are
// never handed out twice, even after deletes.
type Catalog struct {
	groups []*model.Group

	// nextTaskID is the id the next created task receives. Every reachable
	// task has a smaller id.
	nextTaskID int
	// activeTasks counts tasks added minus tasks removed. It only feeds
	// placeholder names; ids never depend on it.
	activeTasks int

	newID func() string
}

func New() *Catalog {
	return &Catalog{
		nextTaskID: 1,
		newID:      func() string { return uuid.NewString() },
	}
}

// Groups returns the groups in display order (snapshot slice).
func (c *Catalog) Groups() []*model.Group {
	out := make([]*model.Group, len(c.groups))
	copy(out, c.groups)
	return out
}

func (c *Catalog) Len() int { return len(c.groups) }

func (c *Catalog) NextTaskID() int { return c.nextTaskID }

func (c *Catalog) ActiveTasks() int { return c.activeTasks }

// Group looks a group up by id.
func (c *Catalog) Group(id string) (*model.Group, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	for _, g := range c.groups {
		if g.ID == id {
			return g, true
		}
	}
	return nil, false
}

// GroupAt returns the group at a 0-based display position.
func (c *Catalog) GroupAt(i int) (*model.Group, bool) {
	if i < 0 || i >= len(c.groups) {
		return nil, false
	}
	return c.groups[i], true
}

// Resolve accepts either a group id or a 1-based display position.
func (c *Catalog) Resolve(ref string) (*model.Group, bool) {
	ref = strings.TrimSpace(ref)
	if g, ok := c.Group(ref); ok {
		return g, true
	}
	n, err := strconv.Atoi(strings.TrimPrefix(ref, "#"))
	if err != nil {
		return nil, false
	}
	return c.GroupAt(n - 1)
}

// Contains reports whether g (by identity) is in the catalog.
func (c *Catalog) Contains(g *model.Group) bool {
	return c.indexOf(g) >= 0
}

func (c *Catalog) indexOf(g *model.Group) int {
	if g == nil {
		return -1
	}
	for i, cur := range c.groups {
		if cur == g {
			return i
		}
	}
	return -1
}

// TaskCount returns the number of reachable tasks.
func (c *Catalog) TaskCount() int {
	n := 0
	for _, g := range c.groups {
		n += g.Len()
	}
	return n
}

// CreateGroup appends a new group. An empty name becomes "Group #<position>".
func (c *Catalog) CreateGroup(name string) *model.Group {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Group #%d", len(c.groups)+1)
	}
	g := model.NewGroup(name)
	g.ID = c.newID()
	c.groups = append(c.groups, g)
	return g
}

// DeleteGroup removes g by identity, discarding its tasks with it.
// It reports whether anything was removed.
func (c *Catalog) DeleteGroup(g *model.Group) bool {
	i := c.indexOf(g)
	if i < 0 {
		return false
	}
	c.activeTasks -= g.Len()
	if c.activeTasks < 0 {
		c.activeTasks = 0
	}
	copy(c.groups[i:], c.groups[i+1:])
	c.groups[len(c.groups)-1] = nil
	c.groups = c.groups[:len(c.groups)-1]
	return true
}

// CreateTask allocates a fresh id and appends a default task to g.
// It returns nil when g is not part of the catalog.
func (c *Catalog) CreateTask(g *model.Group, name string) *model.Task {
	if !c.Contains(g) {
		return nil
	}
	id := c.allocTaskID()
	c.activeTasks++
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Task #%d", c.activeTasks)
	}
	t := model.NewTask(id, name)
	g.AddTask(t)
	return t
}

// DeleteTask removes t from g. Missing groups or tasks are ignored.
func (c *Catalog) DeleteTask(g *model.Group, t *model.Task) bool {
	if t == nil || !c.Contains(g) {
		return false
	}
	if !g.RemoveTask(t.ID) {
		return false
	}
	c.activeTasks--
	return true
}

// DuplicateGroup appends a deep copy of g right after it. Copied tasks get
// fresh ids so the catalog-wide uniqueness holds.
func (c *Catalog) DuplicateGroup(g *model.Group) *model.Group {
	i := c.indexOf(g)
	if i < 0 {
		return nil
	}
	dup := g.Copy()
	dup.ID = c.newID()
	dup.Name = g.Name + " (copy)"
	tasks := dup.Tasks()
	for _, t := range tasks {
		t.ID = c.allocTaskID()
	}
	dup.SetTasks(tasks)
	c.activeTasks += len(tasks)

	c.groups = append(c.groups, nil)
	copy(c.groups[i+2:], c.groups[i+1:])
	c.groups[i+1] = dup
	return dup
}

func (c *Catalog) allocTaskID() int {
	id := c.nextTaskID
	c.nextTaskID++
	return id
}
