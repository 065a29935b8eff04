package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kittytask/internal/config"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// New builds the application logger from cfg. Output goes to log.file when
// set, otherwise to fallback (nil means discard). The returned close func
// releases the file and is never nil.
func New(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "off" {
		return log.New(io.Discard), noop, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, noop, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	w := fallback
	closeFn := noop
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, noop, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "kittytask",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	if cfg.File != "" {
		l.SetColorProfile(termenv.Ascii)
	}
	return l, closeFn, nil
}
