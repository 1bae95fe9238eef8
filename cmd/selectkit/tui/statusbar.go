package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the menu footer: selection count on the left, key hints
// on the right.
type StatusBar struct {
	selected int
	limit    int
	width    int
	help     help.Model
}

// NewStatusBar creates a status bar with footer-styled help.
func NewStatusBar() StatusBar {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = StatusBarKeyStyle
	h.Styles.ShortDesc = StatusBarStyle.Padding(0)
	h.Styles.ShortSeparator = StatusBarStyle.Padding(0)
	return StatusBar{help: h}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the counts.
func (s *StatusBar) Update(selected, limit int) {
	s.selected = selected
	s.limit = limit
}

// View renders the status bar with the short help of keys.
func (s StatusBar) View(keys help.KeyMap) string {
	left := fmt.Sprintf("%d selected", s.selected)
	if s.limit > 0 {
		left = fmt.Sprintf("%d/%d selected", s.selected, s.limit)
	}
	right := s.help.ShortHelpView(keys.ShortHelp())

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	available := s.width - 2 // StatusBarStyle padding
	gap := available - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right
	if s.width > 0 {
		content = ansi.Truncate(content, max(available, 1), "")
		return StatusBarStyle.Width(s.width).Render(content)
	}
	return StatusBarStyle.Render(content)
}
