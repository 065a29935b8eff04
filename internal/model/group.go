package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidColor = errors.New("color must be a #RRGGBB hex code")

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Group is a named collection of tasks. Task order is insertion order.
type Group struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description" yaml:"description"`

	tasks []*Task
}

// NewGroup returns an empty group. An empty name becomes "Generic Group".
func NewGroup(name string) *Group {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Generic Group"
	}
	return &Group{
		Name:        name,
		Color:       DefaultColor,
		Description: DefaultDescription,
	}
}

// AddTask appends t. Id uniqueness is the caller's concern.
func (g *Group) AddTask(t *Task) {
	g.tasks = append(g.tasks, t)
}

// RemoveTask removes the first task with the given id.
// It reports whether a task was removed; a missing id is not an error.
func (g *Group) RemoveTask(id int) bool {
	for i, t := range g.tasks {
		if t.ID != id {
			continue
		}
		copy(g.tasks[i:], g.tasks[i+1:])
		g.tasks[len(g.tasks)-1] = nil
		g.tasks = g.tasks[:len(g.tasks)-1]
		return true
	}
	return false
}

// Task returns the task with the given id, or nil.
func (g *Group) Task(id int) *Task {
	for _, t := range g.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Tasks returns the group's tasks in display order. The slice is a snapshot;
// the tasks themselves are shared.
func (g *Group) Tasks() []*Task {
	out := make([]*Task, len(g.tasks))
	copy(out, g.tasks)
	return out
}

func (g *Group) SetTasks(tasks []*Task) {
	g.tasks = append([]*Task(nil), tasks...)
}

func (g *Group) Len() int { return len(g.tasks) }

// OpenCount returns the number of tasks not yet complete.
func (g *Group) OpenCount() int {
	n := 0
	for _, t := range g.tasks {
		if !t.Complete {
			n++
		}
	}
	return n
}

func (g *Group) SetColor(color string) error {
	color = strings.TrimSpace(color)
	if !hexColorRe.MatchString(color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	g.Color = strings.ToLower(color)
	return nil
}

// Copy returns a deep copy: the task sequence and every task in it are
// duplicated, so neither side observes the other's list mutations.
func (g *Group) Copy() *Group {
	c := &Group{
		ID:          g.ID,
		Name:        g.Name,
		Color:       g.Color,
		Description: g.Description,
	}
	if len(g.tasks) > 0 {
		c.tasks = make([]*Task, 0, len(g.tasks))
		for _, t := range g.tasks {
			c.tasks = append(c.tasks, t.clone())
		}
	}
	return c
}

// Equal compares groups by name.
func (g *Group) Equal(other *Group) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.Name == other.Name
}

func (g *Group) String() string {
	if g == nil {
		return "<nil group>"
	}
	return fmt.Sprintf("%s (%d tasks)", g.Name, len(g.tasks))
}
