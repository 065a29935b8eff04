package tui

import (
	"os"
	"strconv"
	"strings"

	"kittytask/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The TUI must stay readable on light and dark backgrounds, so colors are
// adaptive and faint styling is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted          lipgloss.TerminalColor = ac("240", "243")
	colorChromeMutedFg  lipgloss.TerminalColor = ac("240", "245")
	colorSelectedBg     lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg     lipgloss.TerminalColor = ac("235", "255")
	colorSelectedBorder lipgloss.TerminalColor = ac("232", "255")
	colorCardBorder     lipgloss.TerminalColor = ac("250", "243")
	colorAccent         lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg       lipgloss.TerminalColor = ac("255", "235")
	colorDone           lipgloss.TerminalColor = ac("28", "42")
)

var priorityColors = map[model.Priority]lipgloss.TerminalColor{
	model.PriorityLow:  ac("244", "245"),
	model.PriorityMed:  ac("25", "39"),
	model.PriorityHigh: ac("166", "214"),
	model.PriorityLate: ac("160", "196"),
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleBreadcrumb() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorChromeMutedFg)
}

func styleSelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg)
}

func stylePriority(p model.Priority) lipgloss.Style {
	c, ok := priorityColors[p]
	if !ok {
		c = colorMuted
	}
	return lipgloss.NewStyle().Foreground(c)
}

// groupColor is the group's own color for its card accent, falling back to
// the card border when the group keeps the default black.
func groupColor(hex string) lipgloss.TerminalColor {
	if hex == "" || strings.EqualFold(hex, model.DefaultColor) {
		return colorCardBorder
	}
	return lipgloss.Color(hex)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can disable
// colors in a TUI by accident, so only NO_COLOR and the "none" theme force
// plain output here.
func applyColorProfilePreference(theme string) {
	if theme == "none" || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Detection under-reports on some terminals; trust TERM/COLORTERM when
	// they claim more.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection from ui.theme, then
// the COLORFGBG heuristic ("fg;bg", last segment is the background).
func applyThemePreference(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
