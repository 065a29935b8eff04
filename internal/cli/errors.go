package cli

import (
	"errors"
	"fmt"
)

var (
	errUnknownVerb = errors.New("unknown command")
	errUsage       = errors.New("usage")
)

// ScriptError is a replay script line that could not be parsed.
type ScriptError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Text)
}

func (e *ScriptError) Unwrap() error { return e.Err }

func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}
