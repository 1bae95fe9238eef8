package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IconPosition places the open/closed marker of a Collapsible.
type IconPosition int

const (
	// IconLeft draws > or v before the title.
	IconLeft IconPosition = iota
	// IconRight draws ▾ or ▴ after the title.
	IconRight
)

// Collapsible is a titled panel that shows or hides its content. While open,
// tab moves focus between the title and the content; the content is told
// about focus changes through tea.FocusMsg and tea.BlurMsg.
type Collapsible struct {
	Title        string
	Disabled     bool
	IconPosition IconPosition

	open         bool
	contentFocus bool
	content      tea.Model
}

// NewCollapsible creates a closed panel around content.
func NewCollapsible(title string, content tea.Model) Collapsible {
	return Collapsible{Title: title, content: content}
}

// Open reports whether the content is shown.
func (c Collapsible) Open() bool { return c.open }

// ContentFocused reports whether keys go to the content.
func (c Collapsible) ContentFocused() bool { return c.contentFocus }

// Content returns the wrapped model.
func (c Collapsible) Content() tea.Model { return c.content }

// SetOpen syncs the open state from the owner without emitting ToggleMsg.
func (c *Collapsible) SetOpen(open bool) {
	c.open = open
	if !open {
		c.contentFocus = false
	}
}

// Init implements tea.Model.
func (c Collapsible) Init() tea.Cmd {
	if c.content == nil {
		return nil
	}
	return c.content.Init()
}

// Update handles the title keys and forwards everything else to the content
// while the panel is open.
func (c Collapsible) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case km.String() == "tab" && c.open:
			if c.contentFocus {
				return c.focusTitle()
			}
			return c.focusContent()
		case !c.contentFocus:
			switch km.String() {
			case "enter", " ":
				return c.toggle()
			}
			return c, nil
		}
	}

	if !c.open || c.content == nil {
		return c, nil
	}
	var cmd tea.Cmd
	c.content, cmd = c.content.Update(msg)
	return c, cmd
}

func (c Collapsible) toggle() (tea.Model, tea.Cmd) {
	if c.Disabled {
		return c, nil
	}
	if c.open {
		// The content may still hold an open overlay; let it settle first.
		var cmd tea.Cmd
		c, cmd = c.forward(tea.BlurMsg{})
		c.open = false
		c.contentFocus = false
		return c, tea.Batch(emit(ToggleMsg{Open: false}), cmd)
	}
	c.open = true
	m, cmd := c.focusContent()
	return m, tea.Batch(emit(ToggleMsg{Open: true}), cmd)
}

func (c Collapsible) focusContent() (Collapsible, tea.Cmd) {
	c.contentFocus = true
	return c.forward(tea.FocusMsg{})
}

func (c Collapsible) focusTitle() (Collapsible, tea.Cmd) {
	c.contentFocus = false
	return c.forward(tea.BlurMsg{})
}

func (c Collapsible) forward(msg tea.Msg) (Collapsible, tea.Cmd) {
	if c.content == nil {
		return c, nil
	}
	var cmd tea.Cmd
	c.content, cmd = c.content.Update(msg)
	return c, cmd
}

// HeaderView renders the title line.
func (c Collapsible) HeaderView() string {
	style := PanelTitleStyle
	if !c.contentFocus {
		style = PanelTitleFocusedStyle
	}
	if c.Disabled {
		style = DimStyle
	}

	switch c.IconPosition {
	case IconRight:
		icon := "▾"
		if c.open {
			icon = "▴"
		}
		return style.Render(c.Title + " " + icon)
	default:
		icon := ">"
		if c.open {
			icon = "v"
		}
		return style.Render(icon + " " + c.Title)
	}
}

// View implements tea.Model.
func (c Collapsible) View() string {
	header := c.HeaderView()
	if !c.open || c.content == nil {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, PanelBodyStyle.Render(c.content.View()))
}
