package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kittytask/internal/nav"
)

// scriptStep is one parsed line of a replay script.
type scriptStep struct {
	Line  int
	Text  string
	Event nav.Event
}

// parseScript reads one event per line. Blank lines and lines starting with
// '#' are skipped. The first bad line stops parsing.
func parseScript(r io.Reader) ([]scriptStep, error) {
	var steps []scriptStep
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		words, err := splitShellWords(text)
		if err != nil {
			return nil, &ScriptError{Line: line, Text: text, Err: err}
		}
		ev, err := parseEvent(words)
		if err != nil {
			return nil, &ScriptError{Line: line, Text: text, Err: err}
		}
		steps = append(steps, scriptStep{Line: line, Text: text, Event: ev})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

// scriptVerbs lists the accepted verbs with their arguments.
var scriptVerbs = []string{
	"home",
	"tasks",
	"settings",
	"open <group>",
	"add-group [name]",
	"delete-group <group>",
	"dup-group <group>",
	"rename-group <group> <name>",
	"color <group> <#rrggbb>",
	"describe-group <group> [text]",
	"add-task <group> [name]",
	"delete-task <group> <task-id>",
	"toggle-task <group> <task-id>",
	"priority <group> <task-id>",
	"rename-task <group> <task-id> <name>",
	"due <group> <task-id> [MM-DD-YYYY]",
	"describe-task <group> <task-id> [text]",
}

func parseEvent(words []string) (nav.Event, error) {
	if len(words) == 0 {
		return nil, usagef("empty line")
	}
	verb, args := strings.ToLower(words[0]), words[1:]
	switch verb {
	case "home", "tasks", "settings":
		if err := wantArgs(verb, args, 0, 0); err != nil {
			return nil, err
		}
		page, _ := nav.ParsePage(verb)
		return nav.Navigate{Page: page}, nil
	case "open":
		if err := wantArgs(verb, args, 1, 1); err != nil {
			return nil, err
		}
		return nav.Navigate{Page: nav.PageGroupDetail, GroupID: args[0]}, nil
	case "add-group":
		if err := wantArgs(verb, args, 0, 1); err != nil {
			return nil, err
		}
		return nav.CreateGroup{Name: optional(args, 0)}, nil
	case "delete-group":
		if err := wantArgs(verb, args, 1, 1); err != nil {
			return nil, err
		}
		return nav.DeleteGroup{GroupID: args[0]}, nil
	case "dup-group":
		if err := wantArgs(verb, args, 1, 1); err != nil {
			return nil, err
		}
		return nav.DuplicateGroup{GroupID: args[0]}, nil
	case "rename-group":
		if err := wantArgs(verb, args, 2, 2); err != nil {
			return nil, err
		}
		return nav.RenameGroup{GroupID: args[0], Name: args[1]}, nil
	case "color":
		if err := wantArgs(verb, args, 2, 2); err != nil {
			return nil, err
		}
		return nav.SetGroupColor{GroupID: args[0], Color: args[1]}, nil
	case "describe-group":
		if err := wantArgs(verb, args, 1, 2); err != nil {
			return nil, err
		}
		return nav.DescribeGroup{GroupID: args[0], Text: optional(args, 1)}, nil
	case "add-task":
		if err := wantArgs(verb, args, 1, 2); err != nil {
			return nil, err
		}
		return nav.CreateTask{GroupID: args[0], Name: optional(args, 1)}, nil
	case "delete-task", "toggle-task", "priority":
		if err := wantArgs(verb, args, 2, 2); err != nil {
			return nil, err
		}
		id, err := parseTaskID(args[1])
		if err != nil {
			return nil, err
		}
		switch verb {
		case "delete-task":
			return nav.DeleteTask{GroupID: args[0], TaskID: id}, nil
		case "toggle-task":
			return nav.ToggleTask{GroupID: args[0], TaskID: id}, nil
		default:
			return nav.CyclePriority{GroupID: args[0], TaskID: id}, nil
		}
	case "rename-task":
		if err := wantArgs(verb, args, 3, 3); err != nil {
			return nil, err
		}
		id, err := parseTaskID(args[1])
		if err != nil {
			return nil, err
		}
		return nav.RenameTask{GroupID: args[0], TaskID: id, Name: args[2]}, nil
	case "due", "describe-task":
		if err := wantArgs(verb, args, 2, 3); err != nil {
			return nil, err
		}
		id, err := parseTaskID(args[1])
		if err != nil {
			return nil, err
		}
		if verb == "due" {
			return nav.SetTaskDue{GroupID: args[0], TaskID: id, Date: optional(args, 2)}, nil
		}
		return nav.DescribeTask{GroupID: args[0], TaskID: id, Text: optional(args, 2)}, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownVerb, words[0])
	}
}

func wantArgs(verb string, args []string, lo, hi int) error {
	if len(args) >= lo && len(args) <= hi {
		return nil
	}
	for _, v := range scriptVerbs {
		if v == verb || strings.HasPrefix(v, verb+" ") {
			return usagef("%s", v)
		}
	}
	return usagef("%s", verb)
}

func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || id < 1 {
		return 0, usagef("task id must be a positive integer, got %q", s)
	}
	return id, nil
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
