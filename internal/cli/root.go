package cli

import (
	"os"
	"strings"

	"kittytask/internal/config"
	"kittytask/internal/format"
	"kittytask/internal/logging"
	"kittytask/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	LogLevel   string
	Strict     bool
	Pretty     bool
	Format     string

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "kittytask",
		Short:        "KittyTask: task groups in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  kittytask

  # Replay a script of UI events and print what each page would show
  kittytask replay demo.kt --format yaml

  # Same, from stdin
  printf 'add-group Errands\nadd-task 1 "Post office"\n' | kittytask replay --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		opts := config.Options{Path: app.ConfigPath, LogLevel: app.LogLevel}
		if cmd.Flags().Changed("strict") {
			strict := app.Strict
			opts.Strict = &strict
		}
		cfg, err := config.Load(opts)
		if err != nil {
			return err
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config file (default $KITTYTASK_CONFIG or ~/.config/kittytask/config.toml)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (off|debug|info|warn|error); overrides log.level")
	cmd.PersistentFlags().BoolVar(&app.Strict, "strict", false, "Panic on navigator invariant violations instead of logging them")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON and EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("KITTYTASK_FORMAT", format.JSON), "Output format ("+strings.Join(format.Names, "|")+")")

	cmd.AddCommand(newReplayCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(app *App) error {
	cfg := app.cfg
	// The TUI owns the terminal, so logs only go to log.file.
	logger, closeLog, err := logging.New(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(tui.Options{
		Columns:       cfg.UI.Columns,
		StartPage:     cfg.StartPage(),
		Theme:         cfg.UI.Theme,
		MarkdownStyle: cfg.UI.MarkdownStyle,
		Strict:        cfg.Debug.Strict,
		Settings:      cfg.Settings(),
		Logger:        logger,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.Pretty)
}
