package tui

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/selectkit/internal/config"
	"github.com/ruminaider/selectkit/internal/logger"
	"github.com/ruminaider/selectkit/internal/scroll"
	"github.com/ruminaider/selectkit/internal/selector"
)

// MenuConfig holds the display settings of a Menu. Selection behaviour lives
// in selector.Options.
type MenuConfig struct {
	Placeholder         string
	GroupDisableMessage string
	GroupMessages       map[string]string
	HasDescription      bool
	// ExternalSearch emits SearchMsg on every query change and shows the
	// loading state until the host sends LoadingMsg{Loading: false}.
	ExternalSearch bool
	Width          int
	Height         int
	ScrollOptions  []scroll.Option
}

// anchor decides where the cursor and offset land after the rows change.
type anchor int

const (
	anchorTop    anchor = iota // keep indexes
	anchorBottom               // keep the distance from the last row
	anchorReset                // back to the first row
)

// Menu is the open dropdown: a search field, the grouped item list and a
// footer. It lives only while the selector is open.
type Menu struct {
	state    selector.State
	cfg      MenuConfig
	keys     MenuKeyMap
	input    textinput.Model
	status   StatusBar
	rows     []row
	cursor   int
	offset   int
	expanded map[string]bool
	loading  bool
	detector *scroll.Detector
}

// NewMenu creates the menu state for a freshly opened selector.
func NewMenu(items []selector.Item, values []string, opts selector.Options, cfg MenuConfig) Menu {
	if cfg.Placeholder == "" {
		cfg.Placeholder = config.DefaultPlaceholder
	}
	if cfg.Width <= 0 {
		cfg.Width = MenuWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = MenuListHeight
	}

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = "⌕ "
	ti.Width = cfg.Width - 4
	ti.Focus()

	status := NewStatusBar()
	status.SetWidth(cfg.Width)

	m := Menu{
		state:    selector.New(items, values, opts),
		cfg:      cfg,
		keys:     DefaultMenuKeyMap(),
		input:    ti,
		status:   status,
		expanded: map[string]bool{},
		detector: scroll.NewDetector(cfg.ScrollOptions...),
	}
	m.refresh(anchorReset)
	return m
}

// Init starts the cursor blink of the search field.
func (m Menu) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the current selection state.
func (m Menu) State() selector.State { return m.state }

// Values returns the in-progress selection.
func (m Menu) Values() []string { return m.state.Values() }

// Query returns the search field contents.
func (m Menu) Query() string { return m.input.Value() }

// Loading reports whether the menu waits for the host.
func (m Menu) Loading() bool { return m.loading }

// SetHeight sets the number of list rows.
func (m *Menu) SetHeight(h int) {
	if h < 3 {
		h = 3
	}
	m.cfg.Height = h
	m.clampScroll()
}

// Width returns the rendered width of the menu box content.
func (m Menu) Width() int {
	if m.cfg.HasDescription {
		return m.cfg.Width + descriptionWidth + 1
	}
	return m.cfg.Width
}

// Update handles keys and host messages.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadingMsg:
		m.loading = msg.Loading
		m.refresh(anchorTop)
		return m, nil

	case ItemsMsg:
		items := msg.Items
		if msg.Append {
			items = append(slices.Clone(m.state.Items()), msg.Items...)
		}
		logger.Debug("menu items updated: %d (append=%t)", len(items), msg.Append)
		m.apply(selector.ItemsEvent{Items: items})
		m.detector.Reset()
		m.refresh(anchorTop)
		return m, nil

	case scrollRetryMsg:
		return m, m.checkScrollEnd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Menu) handleKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, m.checkScrollEnd()
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(+1)
		return m, m.checkScrollEnd()
	case key.Matches(msg, m.keys.PageUp):
		m.moveBy(-m.viewport())
		return m, m.checkScrollEnd()
	case key.Matches(msg, m.keys.PageDown):
		m.moveBy(m.viewport())
		return m, m.checkScrollEnd()
	case key.Matches(msg, m.keys.Home):
		m.moveBy(-len(m.rows))
		return m, m.checkScrollEnd()
	case key.Matches(msg, m.keys.End):
		m.moveBy(len(m.rows))
		return m, m.checkScrollEnd()
	case key.Matches(msg, m.keys.Toggle):
		m.activate()
		return m, nil
	case key.Matches(msg, m.keys.SelectAll):
		if strings.TrimSpace(m.state.Query()) != "" {
			m.apply(selector.SelectAllSearchedEvent{})
			m.refresh(anchorBottom)
		}
		return m, nil
	case key.Matches(msg, m.keys.Apply):
		return m, emit(SubmitMsg{Values: m.state.Submit()})
	case key.Matches(msg, m.keys.Cancel):
		return m, emit(CancelMsg{})
	case key.Matches(msg, m.keys.Close):
		return m, emit(CloseRequestMsg{})
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		return m, tea.Batch(cmd, m.setQuery(v))
	}
	return m, cmd
}

// Reset discards the in-progress selection and search and starts over from
// values, as if the menu had just been opened.
func (m Menu) Reset(values []string) Menu {
	m.apply(selector.ResetEvent{Values: values})
	m.input.SetValue("")
	m.loading = false
	m.expanded = map[string]bool{}
	m.detector.Reset()
	m.refresh(anchorReset)
	return m
}

// apply runs ev through the selection state machine.
func (m *Menu) apply(ev selector.Event) selector.Outcome {
	next, outcome := m.state.Apply(ev)
	m.state = next
	return outcome
}

func (m *Menu) setQuery(q string) tea.Cmd {
	m.apply(selector.QueryEvent{Query: q})
	m.detector.Reset()
	if !m.cfg.ExternalSearch {
		m.refresh(anchorReset)
		return nil
	}
	m.loading = true
	m.refresh(anchorReset)
	return emit(SearchMsg{Query: q})
}

// activate toggles whatever the cursor is on.
func (m *Menu) activate() {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return
	}
	r := m.rows[m.cursor]
	switch r.kind {
	case rowItem:
		m.apply(selector.ToggleItemEvent{Value: r.item.Value})
		m.refresh(anchorBottom)
	case rowFreeform:
		m.apply(selector.ToggleFreeformEvent{Value: r.item.Value})
		m.refresh(anchorBottom)
	case rowHeader:
		if r.toggleable {
			m.apply(selector.ToggleGroupEvent{Name: r.group})
			m.refresh(anchorBottom)
		}
	case rowMore:
		m.setExpanded(r.group, true)
		m.refresh(anchorTop)
	case rowLess:
		m.setExpanded(r.group, false)
		m.refresh(anchorTop)
		m.focusCollapsed(r.group)
	}
}

func (m *Menu) setExpanded(group string, open bool) {
	m.expanded = maps.Clone(m.expanded)
	m.expanded[group] = open
}

// focusCollapsed moves the cursor to the "more" row of a group that was just
// collapsed, pulling its header into view when it scrolled above the top.
func (m *Menu) focusCollapsed(group string) {
	for i, r := range m.rows {
		if r.kind == rowMore && r.group == group {
			m.cursor = i
			break
		}
	}
	if h := headerIndex(m.rows, group); h >= 0 && h < m.offset {
		m.offset = h
	}
	m.clampScroll()
}

// refresh rebuilds the rows and repositions cursor and offset.
func (m *Menu) refresh(a anchor) {
	oldLen := len(m.rows)
	m.rows = buildRows(m.state, rowOptions{
		groupMessages: m.cfg.GroupMessages,
		expanded:      m.expanded,
		loading:       m.loading,
	})
	n := len(m.rows)

	switch a {
	case anchorBottom:
		m.cursor = n - (oldLen - m.cursor)
		m.offset = n - (oldLen - m.offset)
	case anchorReset:
		m.cursor, m.offset = 0, 0
	}
	m.settleCursor(+1)
	m.clampScroll()
}

// settleCursor moves the cursor onto a focusable row, searching in dir first.
func (m *Menu) settleCursor(dir int) {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(m.cursor, len(m.rows)-1))
	if i := nextFocusable(m.rows, m.cursor, dir); i >= 0 {
		m.cursor = i
		return
	}
	if i := nextFocusable(m.rows, m.cursor, -dir); i >= 0 {
		m.cursor = i
	}
}

// moveCursor advances to the next focusable row in dir, staying put at the
// ends.
func (m *Menu) moveCursor(dir int) {
	if i := nextFocusable(m.rows, m.cursor+dir, dir); i >= 0 {
		m.cursor = i
	}
	m.clampScroll()
}

// moveBy jumps n rows and then settles on a focusable row.
func (m *Menu) moveBy(n int) {
	dir := 1
	if n < 0 {
		dir = -1
	}
	m.cursor += n
	m.settleCursor(dir)
	m.clampScroll()
}

// viewport returns the number of rows shown at once. Overflowing lists give
// up two lines to the scroll hints.
func (m Menu) viewport() int {
	vp := m.cfg.Height
	if len(m.rows) > m.cfg.Height {
		vp -= 2
	}
	return max(vp, 1)
}

// clampScroll keeps the cursor inside the visible window.
func (m *Menu) clampScroll() {
	vp := m.viewport()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vp {
		m.offset = m.cursor - vp + 1
	}
	maxOffset := max(len(m.rows)-vp, 0)
	m.offset = max(0, min(m.offset, maxOffset))
}

func (m Menu) metrics() scroll.Metrics {
	return scroll.Metrics{Offset: m.offset, Viewport: m.viewport(), Content: len(m.rows)}
}

// scrollRetryMsg re-runs a scroll-end check that the detector throttled.
type scrollRetryMsg struct{}

// checkScrollEnd reveals the next local page or tells the host that the end
// was reached. Lists that fit the viewport never scroll and never fire. A
// throttled check is retried once the throttle window has passed, so the
// last movement is never lost.
func (m *Menu) checkScrollEnd() tea.Cmd {
	if len(m.rows) <= m.cfg.Height {
		return nil
	}
	if !m.detector.Check(m.metrics()) {
		if wait, ok := m.detector.Retry(); ok {
			return tea.Tick(wait, func(time.Time) tea.Msg { return scrollRetryMsg{} })
		}
		return nil
	}
	if strings.TrimSpace(m.state.Query()) != "" {
		return emit(ScrollEndMsg{})
	}

	if m.apply(selector.ScrollEndEvent{}) == selector.OutcomePageAdvanced {
		logger.Debug("menu page advanced to %d/%d", m.state.Page(), m.state.TotalPages())
		m.detector.Reset()
		m.refresh(anchorTop)
		return nil
	}
	return emit(ScrollEndMsg{})
}

func (m Menu) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// hint returns the footer line for the highlighted row: the disabled message
// for blocked items, otherwise the item tooltip unless the limit is reached.
func (m Menu) hint() string {
	r, ok := m.current()
	if !ok || (r.kind != rowItem && r.kind != rowFreeform) {
		return ""
	}
	if m.state.IsDisabled(r.item.Value) {
		if m.cfg.GroupDisableMessage != "" {
			return DisabledMessageStyle.Render(m.cfg.GroupDisableMessage)
		}
		return ""
	}
	if r.item.Tooltip != "" && !m.state.LimitExceeded() {
		return TooltipStyle.Render(r.item.Tooltip)
	}
	return ""
}

// View renders the menu box.
func (m Menu) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(SeparatorStyle.Render(strings.Repeat("─", m.cfg.Width)))
	b.WriteString("\n")
	b.WriteString(m.listView())
	body := b.String()

	if m.cfg.HasDescription {
		panel := DescriptionStyle.Height(m.cfg.Height + 2).Render(m.descriptionView())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	status := m.status
	status.SetWidth(m.Width())
	status.Update(len(m.state.Values()), m.state.Options().LimitCount)

	hint := fit(m.hint(), m.Width())
	return MenuStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, hint, status.View(m.keys)))
}

// listView renders exactly Height lines.
func (m Menu) listView() string {
	vp := m.viewport()
	overflow := len(m.rows) > m.cfg.Height
	end := min(m.offset+vp, len(m.rows))

	lines := make([]string, 0, m.cfg.Height)
	if overflow {
		if m.offset > 0 {
			lines = append(lines, DimStyle.Render("  ↑ more"))
		} else {
			lines = append(lines, "")
		}
	}
	for i := m.offset; i < end; i++ {
		lines = append(lines, fit(m.renderRow(m.rows[i], i == m.cursor), m.cfg.Width))
	}
	for i := end - m.offset; i < vp; i++ {
		lines = append(lines, "")
	}
	if overflow {
		if end < len(m.rows) {
			lines = append(lines, DimStyle.Render("  ↓ more"))
		} else {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (m Menu) descriptionView() string {
	r, ok := m.current()
	if !ok || (r.kind != rowItem && r.kind != rowFreeform) {
		return ""
	}
	var b strings.Builder
	b.WriteString(DescriptionTitleStyle.Render(r.item.DisplayLabel()))
	if r.item.Description != "" {
		b.WriteString("\n\n" + r.item.Description)
	}
	if r.item.Example != "" {
		b.WriteString("\n\n" + DimStyle.Render("Example: "+r.item.Example))
	}
	return b.String()
}
