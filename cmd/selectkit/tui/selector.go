package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/selectkit/internal/config"
	"github.com/ruminaider/selectkit/internal/logger"
	"github.com/ruminaider/selectkit/internal/selector"
)

// SelectorConfig configures a Selector.
type SelectorConfig struct {
	Label       string
	Placeholder string // trigger text when nothing is selected
	Items       []selector.Item
	Values      []string
	Options     selector.Options
	Menu        MenuConfig
	// SubmitMode is config.SubmitModeSubmit (closing cancels) or
	// config.SubmitModeLeave (closing submits).
	SubmitMode  string
	InitialOpen bool
	// Top and Left offset the menu from the trigger.
	Top, Left int
	// Popup leaves the menu out of View; the host composites Overlay instead.
	Popup bool
}

// Selector is the trigger line plus the dropdown menu it opens.
type Selector struct {
	cfg     SelectorConfig
	items   []selector.Item
	values  []string
	open    bool
	focused bool
	menu    Menu
	width   int
	height  int
}

// NewSelector creates a focused selector. With InitialOpen the menu starts
// open.
func NewSelector(cfg SelectorConfig) Selector {
	if cfg.SubmitMode == "" {
		cfg.SubmitMode = config.SubmitModeSubmit
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "Select..."
	}
	s := Selector{
		cfg:     cfg,
		items:   cfg.Items,
		values:  slices.Clone(cfg.Values),
		focused: true,
	}
	if cfg.InitialOpen {
		s.openMenu()
	}
	return s
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	if s.open {
		return s.menu.Init()
	}
	return nil
}

// Values returns the committed selection.
func (s Selector) Values() []string { return slices.Clone(s.values) }

// IsOpen reports whether the menu is shown.
func (s Selector) IsOpen() bool { return s.open }

// Focused reports whether the selector receives keys.
func (s Selector) Focused() bool { return s.focused }

// Menu returns the open menu. Only meaningful while IsOpen.
func (s Selector) Menu() Menu { return s.menu }

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		if s.open {
			s.fitMenu()
		}
		return s, nil

	case tea.FocusMsg:
		s.focused = true
		return s, nil

	case tea.BlurMsg:
		s.focused = false
		if s.open {
			return s.closeByMode()
		}
		return s, nil

	case SubmitMsg:
		if !s.open {
			return s, nil
		}
		return s.submit(msg.Values)

	case CancelMsg:
		if !s.open {
			return s, nil
		}
		return s.cancel()

	case CloseRequestMsg:
		if !s.open {
			return s, nil
		}
		return s.closeByMode()

	case ItemsMsg:
		if msg.Append {
			s.items = append(slices.Clone(s.items), msg.Items...)
		} else {
			s.items = msg.Items
		}
		if s.open {
			var cmd tea.Cmd
			s.menu, cmd = s.menu.Update(msg)
			return s, cmd
		}
		return s, nil

	case ValuesMsg:
		return s.setValues(msg.Values), nil

	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		if !s.open {
			switch msg.String() {
			case "enter", " ", "down":
				s.openMenu()
				return s, tea.Batch(emit(OpenMsg{}), s.menu.Init())
			case "esc":
				return s, emit(DismissMsg{})
			}
			return s, nil
		}
	}

	if !s.open {
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// setValues adopts caller-provided values. Equal values leave an open menu
// alone so in-progress edits survive a redundant update.
func (s Selector) setValues(values []string) Selector {
	if slices.Equal(values, s.values) {
		return s
	}
	s.values = slices.Clone(values)
	logger.Debug("selector %q values set to %d entries", s.cfg.Label, len(values))
	if s.open {
		s.menu = s.menu.Reset(s.values)
	}
	return s
}

func (s *Selector) openMenu() {
	s.menu = NewMenu(s.items, s.values, s.cfg.Options, s.cfg.Menu)
	s.open = true
	s.fitMenu()
	logger.Debug("selector %q opened with %d values", s.cfg.Label, len(s.values))
}

// fitMenu shrinks the list when the terminal is too short for it.
func (s *Selector) fitMenu() {
	if s.height <= 0 {
		return
	}
	want := s.cfg.Menu.Height
	if want <= 0 {
		want = MenuListHeight
	}
	// search field, separator, hint, status bar and the border.
	room := s.height - s.cfg.Top - 7
	s.menu.SetHeight(min(want, room))
}

func (s Selector) submit(values []string) (tea.Model, tea.Cmd) {
	s.values = slices.Clone(values)
	s.open = false
	logger.Info("selector %q submitted %d values", s.cfg.Label, len(values))
	return s, tea.Batch(emit(ChangeMsg{Values: slices.Clone(values)}), emit(CloseMsg{}))
}

func (s Selector) cancel() (tea.Model, tea.Cmd) {
	s.open = false
	logger.Debug("selector %q cancelled", s.cfg.Label)
	return s, emit(CloseMsg{})
}

// closeByMode handles esc and focus loss: leave mode keeps the changes,
// submit mode throws them away.
func (s Selector) closeByMode() (tea.Model, tea.Cmd) {
	if s.cfg.SubmitMode == config.SubmitModeLeave {
		return s.submit(s.menu.Values())
	}
	return s.cancel()
}

// Summary returns the trigger text for the committed values.
func (s Selector) Summary() string {
	if len(s.values) == 0 {
		return ""
	}
	labels := make(map[string]string, len(s.items))
	for _, it := range s.items {
		if _, ok := labels[it.Value]; !ok {
			labels[it.Value] = it.DisplayLabel()
		}
	}
	parts := make([]string, 0, len(s.values))
	for _, v := range s.values {
		if l, ok := labels[v]; ok {
			parts = append(parts, l)
			continue
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, ", ")
}

// TriggerView renders the closed selector line.
func (s Selector) TriggerView() string {
	arrow := "▾"
	if s.open {
		arrow = "▴"
	}
	text := s.Summary()
	if text == "" {
		text = PlaceholderStyle.Render(s.cfg.Placeholder)
	}
	line := text + " " + arrow
	if s.cfg.Label != "" {
		line = s.cfg.Label + ": " + line
	}
	line = fit(line, MenuWidth)
	if s.focused {
		return TriggerFocusedStyle.Render(line)
	}
	return TriggerStyle.Render(line)
}

// Overlay returns the rendered menu box, or "" when closed.
func (s Selector) Overlay() string {
	if !s.open {
		return ""
	}
	return s.menu.View()
}

// MenuPosition returns where the menu box goes for a trigger drawn at
// (originX, originY). The menu hangs below the trigger shifted by Left and
// Top, and flips to the right edge when it would run past termWidth.
func (s Selector) MenuPosition(originX, originY, termWidth int) (x, y int) {
	x = originX + s.cfg.Left
	y = originY + 1 + s.cfg.Top
	if termWidth <= 0 {
		return x, y
	}
	w := lipgloss.Width(s.Overlay())
	if w == 0 {
		w = s.menu.Width() + 4
	}
	if x+w > termWidth {
		x = max(termWidth-w, 0)
	}
	return x, y
}

// View implements tea.Model. Unless Popup is set, the open menu is drawn
// under the trigger.
func (s Selector) View() string {
	trigger := s.TriggerView()
	if !s.open || s.cfg.Popup {
		return trigger
	}
	menu := s.Overlay()
	if s.cfg.Left > 0 {
		pad := strings.Repeat(" ", s.cfg.Left)
		lines := strings.Split(menu, "\n")
		for i := range lines {
			lines[i] = pad + lines[i]
		}
		menu = strings.Join(lines, "\n")
	}
	if s.cfg.Top > 0 {
		menu = strings.Repeat("\n", s.cfg.Top) + menu
	}
	return trigger + "\n" + menu
}
