package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"kittytask/internal/catalog"
	"kittytask/internal/config"
	"kittytask/internal/format"
	"kittytask/internal/logging"
	"kittytask/internal/nav"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [file|-]",
		Short: "Run a script of UI events and print the render instructions",
		Long: "Reads one event per line from a file (or stdin when the file is - or omitted),\n" +
			"dispatches each against a fresh, empty catalog and prints every clear/render\n" +
			"instruction the navigator issued. Blank lines and # comments are skipped;\n" +
			"arguments use shell-style quoting. <group> is a 1-based position or a group id.\n\n" +
			"Verbs:\n  " + strings.Join(scriptVerbs, "\n  "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := format.Normalize(app.Format); err != nil {
				return err
			}
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			steps, err := readScript(cmd, src)
			if err != nil {
				return err
			}

			logger, closeLog, err := logging.New(app.cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			return writeOut(cmd, app, replay(app.cfg, logger, steps))
		},
	}
	return cmd
}

func readScript(cmd *cobra.Command, src string) ([]scriptStep, error) {
	var r io.Reader = cmd.InOrStdin()
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return parseScript(r)
}

// replay runs steps against a fresh navigator and returns the output envelope.
func replay(cfg config.Config, logger *log.Logger, steps []scriptStep) map[string]any {
	rec := &nav.Recorder{}
	n := nav.New(catalog.New(), rec,
		nav.WithLogger(logger),
		nav.WithColumns(cfg.UI.Columns),
		nav.WithStrictInvariants(cfg.Debug.Strict),
		nav.WithSettings(cfg.Settings()),
	)
	n.SwitchTo(cfg.StartPage(), nil)

	unchanged := []int{}
	for _, st := range steps {
		if !n.Dispatch(st.Event) {
			unchanged = append(unchanged, st.Line)
			logger.Debug("no change", "line", st.Line, "text", st.Text)
		}
	}

	meta := map[string]any{
		"events":    len(steps),
		"unchanged": unchanged,
		"page":      n.Page(),
		"groups":    n.Catalog().Len(),
		"tasks":     n.Catalog().TaskCount(),
	}
	if g := n.FocusedGroup(); g != nil {
		meta["group"] = g.ID
	}
	return map[string]any{
		"data": rec.Instructions,
		"meta": meta,
	}
}
