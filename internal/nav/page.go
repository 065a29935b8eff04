package nav

import (
	"fmt"
	"strings"
)

// Page is the single active screen. The zero value is not a page.
type Page int

const (
	PageHome Page = iota + 1
	PageTaskList
	PageGroupDetail
	PageSettings
)

// Pages lists every page in menu order.
var Pages = []Page{PageHome, PageTaskList, PageGroupDetail, PageSettings}

func (p Page) IsValid() bool {
	return p >= PageHome && p <= PageSettings
}

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageTaskList:
		return "task_list"
	case PageGroupDetail:
		return "group_detail"
	case PageSettings:
		return "settings"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// Title is the human label used in menus and breadcrumbs.
func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageTaskList:
		return "Tasks"
	case PageGroupDetail:
		return "Group"
	case PageSettings:
		return "Settings"
	default:
		return "?"
	}
}

func ParsePage(s string) (Page, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return PageHome, nil
	case "task_list", "tasks", "task", "groups":
		return PageTaskList, nil
	case "group_detail", "group":
		return PageGroupDetail, nil
	case "settings":
		return PageSettings, nil
	default:
		return 0, fmt.Errorf("unknown page: %q", s)
	}
}

func (p Page) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Page) UnmarshalText(b []byte) error {
	v, err := ParsePage(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
