package catalog

import (
	"fmt"
	"strings"
)

// InvariantError reports catalog state that can only come from a programming
// defect (duplicate or unallocated task ids, duplicate group ids).
type InvariantError struct {
	Problems []string
}

func (e *InvariantError) Error() string {
	return "catalog invariant violated: " + strings.Join(e.Problems, "; ")
}

// Check verifies id allocation invariants. It returns nil or *InvariantError.
func (c *Catalog) Check() error {
	var problems []string
	seenTasks := map[int]string{}
	seenGroups := map[string]bool{}
	for _, g := range c.groups {
		if g == nil {
			problems = append(problems, "nil group in catalog")
			continue
		}
		if seenGroups[g.ID] {
			problems = append(problems, fmt.Sprintf("duplicate group id %q", g.ID))
		}
		seenGroups[g.ID] = true
		for _, t := range g.Tasks() {
			if t.ID <= 0 || t.ID >= c.nextTaskID {
				problems = append(problems, fmt.Sprintf("task %d in %q outside allocated range [1,%d)", t.ID, g.Name, c.nextTaskID))
			}
			if other, ok := seenTasks[t.ID]; ok {
				problems = append(problems, fmt.Sprintf("task id %d used in %q and %q", t.ID, other, g.Name))
			}
			seenTasks[t.ID] = g.Name
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return &InvariantError{Problems: problems}
}
