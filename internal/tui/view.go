package tui

import (
	"fmt"
	"strings"

	"kittytask/internal/model"
	"kittytask/internal/nav"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// rowsChromeHeight is the space around the task rows on the group page:
// header, breadcrumb, group title, descriptions and footer.
const rowsChromeHeight = 14

const (
	minCardWidth = 16
	cardGap      = 1
)

func (m appModel) View() string {
	var body string
	switch {
	case m.screen.blank:
		body = ""
	case m.screen.page == nav.PageHome:
		body = m.viewHome()
	case m.screen.page == nav.PageTaskList:
		body = m.viewTaskList()
	case m.screen.page == nav.PageGroupDetail:
		body = m.viewGroupDetail()
	case m.screen.page == nav.PageSettings:
		body = m.viewSettings()
	}

	footer := m.help.View(pageKeys{km: m.keys, page: m.screen.page, editing: m.prompt != promptNone})
	if m.prompt != promptNone {
		footer = m.viewPrompt() + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), "", body, "", footer)
}

func (m appModel) viewHeader() string {
	title := styleTitle().Render("KittyTask")
	tabs := []string{title}
	for _, p := range []nav.Page{nav.PageHome, nav.PageTaskList, nav.PageSettings} {
		label := fmt.Sprintf(" %s ", p.Title())
		active := m.screen.page == p || (p == nav.PageTaskList && m.screen.page == nav.PageGroupDetail)
		if active {
			tabs = append(tabs, lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg).Render(label))
		} else {
			tabs = append(tabs, styleBreadcrumb().Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m appModel) viewHome() string {
	o := m.screen.payload.Overview
	if o == nil {
		return ""
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Welcome back."),
		"",
		fmt.Sprintf("%d %s · %d %s", o.Groups, plural(o.Groups, "group", "groups"), o.Tasks, plural(o.Tasks, "task", "tasks")),
		fmt.Sprintf("%d open · %d done", o.Open, o.Complete),
	}
	if o.Groups == 0 {
		lines = append(lines, "", styleMuted().Render("Press 2 to start a task list."))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewTaskList() string {
	p := m.screen.payload
	if len(p.Groups) == 0 {
		return styleMuted().Render("No groups yet. Press a to add one.")
	}
	cols := max(p.Columns, 1)
	width := max((m.width-cardGap*(cols-1))/cols-2, minCardWidth)

	var grid [][]string
	for i, cell := range p.Groups {
		for len(grid) <= cell.Slot.Row {
			grid = append(grid, nil)
		}
		grid[cell.Slot.Row] = append(grid[cell.Slot.Row], m.renderGroupCard(cell, width, i == m.groupCursor))
	}

	rows := make([]string, 0, len(grid))
	for _, cards := range grid {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cards, cardGap)...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m appModel) renderGroupCard(cell nav.GroupCell, width int, selected bool) string {
	inner := width - 2
	name := xansi.Truncate(cell.Name, inner, "…")
	meta := fmt.Sprintf("%d %s · %d open", cell.TaskCount, plural(cell.TaskCount, "task", "tasks"), cell.OpenCount)

	st := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(groupColor(cell.Color))
	nameStyle := lipgloss.NewStyle().Bold(true)
	if selected {
		st = st.BorderForeground(colorSelectedBorder).Border(lipgloss.ThickBorder())
		nameStyle = nameStyle.Foreground(colorAccent)
	}
	return st.Render(nameStyle.Render(name) + "\n" + styleMuted().Render(xansi.Truncate(meta, inner, "…")))
}

func (m appModel) viewGroupDetail() string {
	g := m.screen.payload.Group
	if g == nil {
		return ""
	}
	swatch := lipgloss.NewStyle().Foreground(groupColor(g.Color)).Render("■")
	crumb := styleBreadcrumb().Render("Tasks › ") + swatch + " " + lipgloss.NewStyle().Bold(true).Render(g.Name)
	counts := styleMuted().Render(fmt.Sprintf("%d %s, %d open", g.TaskCount, plural(g.TaskCount, "task", "tasks"), g.OpenCount))

	parts := []string{crumb, counts}
	if desc := renderMarkdown(g.Description, m.mdStyle, m.width-4); desc != "" {
		parts = append(parts, desc)
	}
	parts = append(parts, "")
	if len(m.screen.payload.Tasks) == 0 {
		parts = append(parts, styleMuted().Render("No tasks. Press a to add one."))
	} else {
		parts = append(parts, m.rows.View())
		if t := m.selectedTask(); t != nil && t.Description != model.DefaultDescription {
			parts = append(parts, "", styleMuted().Render(xansi.Truncate(t.Description, max(m.width-4, 10), "…")))
		}
	}
	return strings.Join(parts, "\n")
}

func (m appModel) selectedTask() *nav.TaskRow {
	tasks := m.screen.payload.Tasks
	if m.taskCursor < 0 || m.taskCursor >= len(tasks) {
		return nil
	}
	return &tasks[m.taskCursor]
}

// renderTaskRows draws every task row; the viewport shows a window of them.
func (m appModel) renderTaskRows(width int) string {
	tasks := m.screen.payload.Tasks
	if len(tasks) == 0 {
		return ""
	}
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		check := "[ ]"
		if t.Complete {
			check = lipgloss.NewStyle().Foreground(colorDone).Render("[x]")
		}
		prio := stylePriority(t.Priority).Render(fmt.Sprintf("%-4s", t.Priority))
		due := ""
		if t.DueDate != "" {
			due = "  due " + t.DueDate
		}
		prefix := fmt.Sprintf("%s %s #%-3d ", check, prio, t.ID)
		room := max(width-xansi.StringWidth(prefix)-xansi.StringWidth(due), 4)
		name := xansi.Truncate(t.Name, room, "…")
		if t.Complete {
			name = styleMuted().Strikethrough(true).Render(name)
		}
		line := prefix + name + styleMuted().Render(due)
		if i == m.taskCursor {
			line = styleSelectedRow().Width(width).Render(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewSettings() string {
	p := m.screen.payload
	keyWidth := 0
	for _, s := range p.Settings {
		keyWidth = max(keyWidth, xansi.StringWidth(s.Key))
	}
	keyStyle := styleBreadcrumb().Width(keyWidth + 2)
	lines := []string{styleMuted().Render(p.Notice), ""}
	for _, s := range p.Settings {
		lines = append(lines, keyStyle.Render(s.Key)+s.Value)
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewPrompt() string {
	return styleBreadcrumb().Render(m.prompt.label()+": ") + m.input.View()
}

func joinWithGap(items []string, gap int) []string {
	if len(items) < 2 || gap <= 0 {
		return items
	}
	spacer := strings.Repeat(" ", gap)
	out := make([]string, 0, len(items)*2-1)
	for i, it := range items {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, it)
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
