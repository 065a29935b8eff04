package cli

import (
	"fmt"
	"strings"

	"kittytask/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw, render bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Topics()}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("unknown docs topic: %q (run `kittytask docs` to list topics)", topic)
			}

			switch {
			case render:
				style := app.cfg.UI.MarkdownStyle
				if app.cfg.UI.Theme == "none" || style == "" {
					style = "notty"
				}
				out, err := glamour.Render(body, style)
				if err != nil {
					return fmt.Errorf("render %s: %w", topic, err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Trim(out, "\n"))
				return err
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"topic": topic, "markdown": body}})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")

	return cmd
}
