package nav

import (
	"kittytask/internal/catalog"
	"kittytask/internal/model"
)

// DefaultColumns is the width of the group grid on the task list page.
const DefaultColumns = 3

const settingsNotice = "Settings are read from the config file and environment; editing here has yet to be implemented."

// Slot is a grid position on the rendered page.
type Slot struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

type GroupCell struct {
	Slot      Slot   `json:"slot" yaml:"slot"`
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Color     string `json:"color" yaml:"color"`
	TaskCount int    `json:"taskCount" yaml:"taskCount"`
	OpenCount int    `json:"openCount" yaml:"openCount"`
}

type TaskRow struct {
	Slot        Slot           `json:"slot" yaml:"slot"`
	ID          int            `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	DueDate     string         `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Priority    model.Priority `json:"priority" yaml:"priority"`
	Description string         `json:"description" yaml:"description"`
	Complete    bool           `json:"complete" yaml:"complete"`
}

type GroupHeader struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description" yaml:"description"`
	TaskCount   int    `json:"taskCount" yaml:"taskCount"`
	OpenCount   int    `json:"openCount" yaml:"openCount"`
}

type Overview struct {
	Groups   int `json:"groups" yaml:"groups"`
	Tasks    int `json:"tasks" yaml:"tasks"`
	Open     int `json:"open" yaml:"open"`
	Complete int `json:"complete" yaml:"complete"`
}

type Setting struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Payload is everything a renderer needs to draw one page. It holds copies,
// never pointers into the catalog.
type Payload struct {
	Page     Page         `json:"page" yaml:"page"`
	Columns  int          `json:"columns,omitempty" yaml:"columns,omitempty"`
	Overview *Overview    `json:"overview,omitempty" yaml:"overview,omitempty"`
	Groups   []GroupCell  `json:"groups,omitempty" yaml:"groups,omitempty"`
	Group    *GroupHeader `json:"group,omitempty" yaml:"group,omitempty"`
	Tasks    []TaskRow    `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Notice   string       `json:"notice,omitempty" yaml:"notice,omitempty"`
	Settings []Setting    `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// layout hands out grid slots. Both counters restart at zero for every build.
type layout struct {
	columns   int
	groupSlot int
	taskSlot  int
}

func (l *layout) reset() {
	l.groupSlot = 0
	l.taskSlot = 0
}

func (l *layout) nextGroupSlot() Slot {
	cols := l.columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	i := l.groupSlot
	l.groupSlot++
	return Slot{Row: i / cols, Col: i % cols}
}

func (l *layout) nextTaskSlot() Slot {
	i := l.taskSlot
	l.taskSlot++
	return Slot{Row: i, Col: 0}
}

// BuildPayload computes the payload for page from catalog state alone.
// group is only consulted for PageGroupDetail.
func BuildPayload(c *catalog.Catalog, page Page, group *model.Group, columns int, settings []Setting) Payload {
	l := layout{columns: columns}
	return buildPayload(c, page, group, &l, settings)
}

func buildPayload(c *catalog.Catalog, page Page, group *model.Group, l *layout, settings []Setting) Payload {
	p := Payload{Page: page}
	switch page {
	case PageHome:
		p.Overview = overviewOf(c)
	case PageTaskList:
		p.Columns = l.columns
		if p.Columns <= 0 {
			p.Columns = DefaultColumns
		}
		for _, g := range c.Groups() {
			p.Groups = append(p.Groups, GroupCell{
				Slot:      l.nextGroupSlot(),
				ID:        g.ID,
				Name:      g.Name,
				Color:     g.Color,
				TaskCount: g.Len(),
				OpenCount: g.OpenCount(),
			})
		}
	case PageGroupDetail:
		if group == nil {
			return p
		}
		p.Group = &GroupHeader{
			ID:          group.ID,
			Name:        group.Name,
			Color:       group.Color,
			Description: group.Description,
			TaskCount:   group.Len(),
			OpenCount:   group.OpenCount(),
		}
		for _, t := range group.Tasks() {
			p.Tasks = append(p.Tasks, TaskRow{
				Slot:        l.nextTaskSlot(),
				ID:          t.ID,
				Name:        t.Name,
				DueDate:     t.DueDate,
				Priority:    t.Priority,
				Description: t.Description,
				Complete:    t.Complete,
			})
		}
	case PageSettings:
		p.Notice = settingsNotice
		p.Settings = append([]Setting(nil), settings...)
	}
	return p
}

func overviewOf(c *catalog.Catalog) *Overview {
	o := &Overview{Groups: c.Len()}
	for _, g := range c.Groups() {
		o.Tasks += g.Len()
		o.Open += g.OpenCount()
	}
	o.Complete = o.Tasks - o.Open
	return o
}
