package config

import (
	"os"
	"path/filepath"
	"testing"

	"kittytask/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config lookup at an empty directory so the developer's own
// config never leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("KITTYTASK_CONFIG", "")
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, c.UI.Columns)
	assert.Equal(t, "home", c.UI.StartPage)
	assert.Equal(t, "auto", c.UI.Theme)
	assert.Equal(t, "dark", c.UI.MarkdownStyle)
	assert.Equal(t, "info", c.Log.Level)
	assert.Empty(t, c.Log.File)
	assert.False(t, c.Debug.Strict)
	assert.Empty(t, c.File)
	assert.Equal(t, nav.PageHome, c.StartPage())
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
[ui]
columns = 4
start_page = "tasks"
markdown_style = "light"

[log]
level = "debug"
file = "/tmp/kittytask.log"
`)
	t.Setenv("KITTYTASK_CONFIG", path)
	t.Setenv("KITTYTASK_UI_THEME", "none")

	c, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, path, c.File)
	assert.Equal(t, 4, c.UI.Columns)
	assert.Equal(t, "task_list", c.UI.StartPage)
	assert.Equal(t, nav.PageTaskList, c.StartPage())
	assert.Equal(t, "light", c.UI.MarkdownStyle)
	assert.Equal(t, "none", c.UI.Theme)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "/tmp/kittytask.log", c.Log.File)
}

func TestLoadDefaultLocation(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(defaultDir(), 0o755))
	writeConfig(t, defaultDir(), "[ui]\ncolumns = 2\n")

	c, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, c.UI.Columns)
	assert.NotEmpty(t, c.File)
}

func TestOptionsOverrideFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "[log]\nlevel = \"error\"\n[debug]\nstrict = false\n")
	strict := true

	c, err := Load(Options{Path: path, LogLevel: "WARN", Strict: &strict})
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Log.Level)
	assert.True(t, c.Debug.Strict)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"ui.columns":        "[ui]\ncolumns = 0\n",
		"ui.start_page":     "[ui]\nstart_page = \"group\"\n",
		"ui.theme":          "[ui]\ntheme = \"neon\"\n",
		"ui.markdown_style": "[ui]\nmarkdown_style = \"solarized\"\n",
		"log.level":         "[log]\nlevel = \"trace\"\n",
	}
	for key, body := range cases {
		t.Run(key, func(t *testing.T) {
			dir := isolate(t)
			_, err := Load(Options{Path: writeConfig(t, dir, body)})
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, key, fe.Key)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(Options{Path: writeConfig(t, dir, "[ui\ncolumns = ")})
	assert.ErrorContains(t, err, "read config")
}

func TestSettingsRows(t *testing.T) {
	isolate(t)
	c, err := Load(Options{})
	require.NoError(t, err)

	rows := c.Settings()
	require.NotEmpty(t, rows)
	assert.Equal(t, nav.Setting{Key: "config file", Value: "(none)"}, rows[0])
	assert.Contains(t, rows, nav.Setting{Key: "ui.columns", Value: "3"})
	assert.Contains(t, rows, nav.Setting{Key: "debug.strict", Value: "false"})
}

func TestMarkdownStyleNormalized(t *testing.T) {
	dir := isolate(t)
	c, err := Load(Options{Path: writeConfig(t, dir, "[ui]\nmarkdown_style = \" Dracula \"\n")})
	require.NoError(t, err)
	assert.Equal(t, "dracula", c.UI.MarkdownStyle)

	t.Setenv("KITTYTASK_UI_MARKDOWN_STYLE", "auto")
	_, err = Load(Options{Path: writeConfig(t, dir, "")})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "ui.markdown_style", fe.Key)
	assert.Contains(t, fe.Reason, "notty")

	assert.Subset(t, MarkdownStyles(), []string{"ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"})
}
