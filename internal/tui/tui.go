package tui

import (
	"kittytask/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Options configures the interactive UI.
type Options struct {
	Columns       int
	StartPage     nav.Page
	Theme         string
	MarkdownStyle string
	Strict        bool
	Settings      []nav.Setting
	Logger        *log.Logger
}

func Run(opts Options) error {
	applyThemePreference(opts.Theme)
	applyColorProfilePreference(opts.Theme)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
