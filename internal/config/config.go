package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"kittytask/internal/nav"

	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
	Debug DebugConfig `mapstructure:"debug"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type UIConfig struct {
	Columns       int    `mapstructure:"columns"`
	StartPage     string `mapstructure:"start_page"`
	Theme         string `mapstructure:"theme"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type DebugConfig struct {
	Strict bool `mapstructure:"strict"`
}

// Options are explicit overrides, typically from command-line flags. Empty
// fields leave file and env values alone.
type Options struct {
	Path     string
	LogLevel string
	Strict   *bool
}

// Load reads configuration from file and env. Env var overrides use prefix
// KITTYTASK_, e.g. KITTYTASK_UI_COLUMNS=4. A missing config file is not an
// error; a malformed one is.
func Load(opts Options) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.columns", nav.DefaultColumns)
	v.SetDefault("ui.start_page", nav.PageHome.String())
	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.markdown_style", "dark")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("debug.strict", false)

	v.SetConfigType("toml")

	cfgPath := opts.Path
	if cfgPath == "" {
		cfgPath = os.Getenv("KITTYTASK_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(defaultDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KITTYTASK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		found = false
	}

	if opts.LogLevel != "" {
		v.Set("log.level", opts.LogLevel)
	}
	if opts.Strict != nil {
		v.Set("debug.strict", *opts.Strict)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if found {
		c.File = v.ConfigFileUsed()
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func defaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "kittytask")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "kittytask")
}

// Validate normalizes c in place and rejects values the app cannot use.
func (c *Config) Validate() error {
	if c.UI.Columns < 1 || c.UI.Columns > 12 {
		return &FieldError{Key: "ui.columns", Value: strconv.Itoa(c.UI.Columns), Reason: "must be between 1 and 12"}
	}
	page, err := nav.ParsePage(c.UI.StartPage)
	if err != nil || page == nav.PageGroupDetail {
		return &FieldError{Key: "ui.start_page", Value: c.UI.StartPage, Reason: "must be home, tasks or settings"}
	}
	c.UI.StartPage = page.String()

	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	switch c.UI.Theme {
	case "auto", "light", "dark", "none":
	default:
		return &FieldError{Key: "ui.theme", Value: c.UI.Theme, Reason: "must be auto, light, dark or none"}
	}

	c.UI.MarkdownStyle = strings.ToLower(strings.TrimSpace(c.UI.MarkdownStyle))
	if c.UI.MarkdownStyle == "" {
		c.UI.MarkdownStyle = styles.DarkStyle
	}
	if _, ok := styles.DefaultStyles[c.UI.MarkdownStyle]; !ok {
		return &FieldError{Key: "ui.markdown_style", Value: c.UI.MarkdownStyle, Reason: "must be one of " + strings.Join(MarkdownStyles(), ", ")}
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "off", "debug", "info", "warn", "error":
	default:
		return &FieldError{Key: "log.level", Value: c.Log.Level, Reason: "must be off, debug, info, warn or error"}
	}
	return nil
}

// MarkdownStyles lists the glamour standard style names accepted by
// ui.markdown_style.
func MarkdownStyles() []string {
	names := make([]string, 0, len(styles.DefaultStyles))
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// StartPage is the parsed ui.start_page. Call after Validate.
func (c Config) StartPage() nav.Page {
	p, err := nav.ParsePage(c.UI.StartPage)
	if err != nil {
		return nav.PageHome
	}
	return p
}

// Settings lists the effective values for the settings page.
func (c Config) Settings() []nav.Setting {
	file := c.File
	if file == "" {
		file = "(none)"
	}
	logFile := c.Log.File
	if logFile == "" {
		logFile = "(none)"
	}
	return []nav.Setting{
		{Key: "config file", Value: file},
		{Key: "ui.columns", Value: strconv.Itoa(c.UI.Columns)},
		{Key: "ui.start_page", Value: c.UI.StartPage},
		{Key: "ui.theme", Value: c.UI.Theme},
		{Key: "ui.markdown_style", Value: c.UI.MarkdownStyle},
		{Key: "log.level", Value: c.Log.Level},
		{Key: "log.file", Value: logFile},
		{Key: "debug.strict", Value: strconv.FormatBool(c.Debug.Strict)},
	}
}

// FieldError is a config value that failed validation.
type FieldError struct {
	Key    string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config %s=%q: %s", e.Key, e.Value, e.Reason)
}
