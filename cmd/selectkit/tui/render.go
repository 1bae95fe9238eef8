package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// RenderCheckbox returns a styled [x] or [ ] checkbox, or [-] when the row
// cannot be toggled.
func RenderCheckbox(selected, disabled bool) string {
	switch {
	case disabled:
		return DimStyle.Render("[-]")
	case selected:
		return SelectedStyle.Render("[x]")
	default:
		return UnselectedStyle.Render("[ ]")
	}
}

// RenderItemText returns the label, bold when current, dim when disabled.
func RenderItemText(text string, isCurrent, disabled bool) string {
	switch {
	case disabled:
		return DimStyle.Render(text)
	case isCurrent:
		return CurrentStyle.Render(text)
	default:
		return text
	}
}

// RenderHeader renders a group header. Toggleable headers carry a checkbox
// reflecting whether the whole group is selected.
func RenderHeader(title string, toggleable, full, isCurrent bool) string {
	if !toggleable {
		return HeaderStyle.Render(fmt.Sprintf("── %s ──", title))
	}
	box := RenderCheckbox(full, false)
	if isCurrent {
		return box + " " + CurrentStyle.Render(title)
	}
	return box + " " + HeaderStyle.Render(title)
}

// cursorMark returns the two-column cursor gutter.
func cursorMark(isCurrent bool) string {
	if isCurrent {
		return "> "
	}
	return "  "
}

// fit truncates s to width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// renderRow renders one list row against the current selection.
func (m Menu) renderRow(r row, isCurrent bool) string {
	s := m.state
	switch r.kind {
	case rowHeader:
		return cursorMark(isCurrent) + RenderHeader(r.text, r.toggleable, s.GroupFullySelected(r.group), isCurrent)
	case rowMessage:
		if r.group != "" {
			return "  " + GroupMessageStyle.Render(r.text)
		}
		return "  " + DimStyle.Render(r.text)
	case rowMore:
		return cursorMark(isCurrent) + ExpandStyle.Render(fmt.Sprintf("▸ %d more", r.hidden))
	case rowLess:
		return cursorMark(isCurrent) + ExpandStyle.Render("▾ show less")
	}

	value := r.item.Value
	disabled := s.IsDisabled(value)
	line := cursorMark(isCurrent) +
		RenderCheckbox(s.IsSelected(value), disabled) + " " +
		RenderItemText(r.item.DisplayLabel(), isCurrent, disabled)
	if r.kind == rowFreeform || s.IsFreeform(value) {
		line += " " + FreeformTagStyle.Render("(Freeform)")
	}
	return line
}
