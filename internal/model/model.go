package model

import (
	"fmt"
	"strings"
)

const (
	// DefaultDescription is the placeholder text for new tasks and groups.
	DefaultDescription = "No known description."
	// DefaultColor is the color of a new group (black).
	DefaultColor = "#000000"
	// DueDateUnset marks a task without a due date. Set dates use MM-DD-YYYY;
	// the format is a contract with the caller and is not validated here.
	DueDateUnset = ""
)

type Priority int

const (
	PriorityLow  Priority = 1
	PriorityMed  Priority = 2
	PriorityHigh Priority = 3
	PriorityLate Priority = 4
)

func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityLate
}

// Next cycles LOW -> MED -> HIGH -> LATE -> LOW.
func (p Priority) Next() Priority {
	if !p.IsValid() || p == PriorityLate {
		return PriorityLow
	}
	return p + 1
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMed:
		return "MED"
	case PriorityHigh:
		return "HIGH"
	case PriorityLate:
		return "LATE"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

func ParsePriority(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW", "1":
		return PriorityLow, nil
	case "MED", "MEDIUM", "2":
		return PriorityMed, nil
	case "HIGH", "3":
		return PriorityHigh, nil
	case "LATE", "4":
		return PriorityLate, nil
	default:
		return 0, fmt.Errorf("invalid priority: %q", s)
	}
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Task is a single to-do item. It is owned by exactly one Group.
type Task struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	DueDate     string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Priority    Priority `json:"priority" yaml:"priority"`
	Description string   `json:"description" yaml:"description"`
	Complete    bool     `json:"complete" yaml:"complete"`
}

// NewTask returns a task with default fields. An empty name becomes "Task #<id>".
func NewTask(id int, name string) *Task {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Task #%d", id)
	}
	return &Task{
		ID:          id,
		Name:        name,
		DueDate:     DueDateUnset,
		Priority:    PriorityLow,
		Description: DefaultDescription,
	}
}

// Equal reports whether both tasks carry the same id.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.ID == other.ID
}

func (t *Task) ToggleComplete() {
	t.Complete = !t.Complete
}

func (t *Task) HasDueDate() bool {
	return strings.TrimSpace(t.DueDate) != DueDateUnset
}

func (t *Task) String() string {
	if t == nil {
		return "<nil task>"
	}
	mark := "[ ]"
	if t.Complete {
		mark = "[x]"
	}
	return fmt.Sprintf("%s (#%d) %s", t.Name, t.ID, mark)
}

func (t *Task) clone() *Task {
	c := *t
	return &c
}
