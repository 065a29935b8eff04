package nav

import (
	"fmt"
	"strings"
)

// InvariantError is a navigator state that no sequence of valid calls can
// produce. It signals a programming defect.
type InvariantError struct {
	Problems []string
	Cause    error
}

func (e *InvariantError) Error() string {
	msg := "navigator invariant violated"
	if len(e.Problems) > 0 {
		msg += ": " + strings.Join(e.Problems, "; ")
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InvariantError) Unwrap() error { return e.Cause }

// Check verifies navigator and catalog invariants.
func (n *Navigator) Check() error {
	var problems []string
	if active := n.ActivePages(); len(active) != 1 {
		problems = append(problems, fmt.Sprintf("%d active pages", len(active)))
	}
	switch {
	case n.page == PageGroupDetail && n.focused == nil:
		problems = append(problems, "group detail without a focused group")
	case n.page == PageGroupDetail && !n.catalog.Contains(n.focused):
		problems = append(problems, fmt.Sprintf("focused group %q not in catalog", n.focused.Name))
	case n.page != PageGroupDetail && n.focused != nil:
		problems = append(problems, fmt.Sprintf("focused group %q set on %s", n.focused.Name, n.page))
	}
	cause := n.catalog.Check()
	if len(problems) == 0 && cause == nil {
		return nil
	}
	return &InvariantError{Problems: problems, Cause: cause}
}

func (n *Navigator) assertInvariants() {
	err := n.Check()
	if err == nil {
		return
	}
	if n.strict {
		panic(err)
	}
	n.log.Error("invariant violated", "err", err)
}
