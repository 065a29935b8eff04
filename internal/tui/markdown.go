package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdRendererMu sync.Mutex
	// Keyed by style and wrap width. WithAutoStyle can block on terminal
	// queries, so renderers always use a fixed standard style.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// markdownStyleFor maps ui.theme and ui.markdown_style onto a glamour
// standard style name.
func markdownStyleFor(theme, style string) string {
	if theme == "none" {
		return "notty"
	}
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		return "dark"
	}
	return style
}

func renderMarkdown(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	key := style + ":" + strconv.Itoa(width)
	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
