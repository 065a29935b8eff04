package tui

import "kittytask/internal/nav"

// screen is the navigator's renderer inside the TUI. It keeps the last page
// payload; View draws from it.
type screen struct {
	page    nav.Page
	payload nav.Payload
	blank   bool
	renders int
}

func (s *screen) ClearPage() {
	s.page = 0
	s.payload = nav.Payload{}
	s.blank = true
}

func (s *screen) RenderPage(page nav.Page, payload nav.Payload) {
	s.page = page
	s.payload = payload
	s.blank = false
	s.renders++
}
