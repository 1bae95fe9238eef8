package tui

import (
	"fmt"
	"strings"

	"github.com/ruminaider/selectkit/internal/selector"
)

// Fixed group titles and blank-state messages.
const (
	GroupAddFreeform   = "Add Freeform"
	GroupSearchResults = "Search Results"
	MsgEmptyData       = "Empty Data"
	MsgEmptySearch     = "Empty Search Results"
	MsgLoading         = "Loading..."
)

type rowKind int

const (
	rowHeader   rowKind = iota
	rowItem             // regular item toggle
	rowFreeform         // "Add Freeform" entry; toggles through ToggleFreeformItem
	rowMessage          // group note or blank-state text, never focusable
	rowMore             // "▸ N more", expands the group
	rowLess             // "▾ show less", collapses the group
)

// row is one line of the rendered menu list.
type row struct {
	kind  rowKind
	group string
	text  string
	item  selector.Item
	// toggleable marks headers that select or deselect their whole group.
	toggleable bool
	hidden     int
}

func (r row) focusable() bool {
	switch r.kind {
	case rowItem, rowFreeform, rowMore, rowLess:
		return true
	case rowHeader:
		return r.toggleable
	}
	return false
}

// rowOptions carries the menu settings that shape the row list.
type rowOptions struct {
	groupMessages map[string]string
	expanded      map[string]bool
	loading       bool
}

// buildRows flattens the selection state into display rows. A non-blank query
// shows the freeform entry and the search results; otherwise the current
// selection is listed first, then the paged groups.
func buildRows(s selector.State, o rowOptions) []row {
	if q := strings.TrimSpace(s.Query()); q != "" {
		return searchRows(s, q, o)
	}
	return groupRows(s, o)
}

func searchRows(s selector.State, q string, o rowOptions) []row {
	var rows []row
	if s.Options().Freeform {
		rows = append(rows,
			row{kind: rowHeader, group: GroupAddFreeform, text: GroupAddFreeform},
			row{kind: rowFreeform, group: GroupAddFreeform, item: selector.Item{Value: q, Label: q}},
		)
	}

	rows = append(rows, row{kind: rowHeader, group: GroupSearchResults, text: GroupSearchResults})
	results := s.SearchResults()
	switch {
	case o.loading:
		rows = append(rows, row{kind: rowMessage, text: MsgLoading})
	case len(results) == 0:
		rows = append(rows, row{kind: rowMessage, text: MsgEmptySearch})
	}
	for _, it := range results {
		rows = append(rows, row{kind: rowItem, group: GroupSearchResults, item: it})
	}
	return rows
}

func groupRows(s selector.State, o rowOptions) []row {
	var rows []row

	if selected := s.SelectedItems(); len(selected) > 0 {
		name := fmt.Sprintf("Selected (%d)", len(selected))
		rows = append(rows, row{kind: rowHeader, group: name, text: name})
		for _, it := range selected {
			rows = append(rows, row{kind: rowItem, group: name, item: it})
		}
	}

	if o.loading {
		return append(rows, row{kind: rowMessage, text: MsgLoading})
	}

	groups := s.Groups()
	if len(groups) == 0 {
		return append(rows,
			row{kind: rowHeader, group: selector.AllValues, text: selector.AllValues},
			row{kind: rowMessage, text: MsgEmptyData},
		)
	}

	opts := s.Options()
	for _, g := range groups {
		members := len(s.GroupMembers(g.Name))
		toggleable := opts.GroupSelect &&
			(s.GroupFullySelected(g.Name) || !s.GroupSelectDisabled(members))
		rows = append(rows, row{kind: rowHeader, group: g.Name, text: g.Name, toggleable: toggleable})

		if msg := o.groupMessages[g.Name]; msg != "" {
			rows = append(rows, row{kind: rowMessage, group: g.Name, text: msg})
		}

		count := s.CollapseCountFor(g.Name)
		expanded := o.expanded[g.Name]
		visible, hidden := selector.Collapse(g.Items, count, expanded)
		for _, it := range visible {
			rows = append(rows, row{kind: rowItem, group: g.Name, item: it})
		}
		switch {
		case hidden > 0:
			rows = append(rows, row{kind: rowMore, group: g.Name, hidden: hidden})
		case expanded && count > 0 && len(g.Items) > count:
			rows = append(rows, row{kind: rowLess, group: g.Name})
		}
	}
	return rows
}

// nextFocusable returns the first focusable index at or after from moving in
// dir, or -1.
func nextFocusable(rows []row, from, dir int) int {
	for i := from; i >= 0 && i < len(rows); i += dir {
		if rows[i].focusable() {
			return i
		}
	}
	return -1
}

// headerIndex returns the index of the header row for group, or -1.
func headerIndex(rows []row, group string) int {
	for i, r := range rows {
		if r.kind == rowHeader && r.group == group {
			return i
		}
	}
	return -1
}
