package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultAppTitle is the panel title of the demo layout.
const DefaultAppTitle = "Click me"

// AppConfig configures App.
type AppConfig struct {
	Title    string
	Selector SelectorConfig
	// QuitOnChange ends the program after the first submit.
	QuitOnChange bool
}

// App is the root model: a collapsible panel hosting one selector whose menu
// pops up over the rest of the screen.
type App struct {
	panel        Collapsible
	width        int
	height       int
	values       []string
	submitted    bool
	aborted      bool
	quitOnChange bool
}

// NewApp builds the panel and selector. An initially open selector starts
// with the panel open and focused on it.
func NewApp(cfg AppConfig) App {
	title := cfg.Title
	if title == "" {
		title = DefaultAppTitle
	}
	sc := cfg.Selector
	sc.Popup = true

	panel := NewCollapsible(title, NewSelector(sc))
	if sc.InitialOpen {
		panel.SetOpen(true)
		panel.contentFocus = true
	}
	return App{
		panel:        panel,
		values:       slices.Clone(sc.Values),
		quitOnChange: cfg.QuitOnChange,
	}
}

// Values returns the last submitted selection, or the initial values.
func (a App) Values() []string { return slices.Clone(a.values) }

// Submitted reports whether the user applied a selection.
func (a App) Submitted() bool { return a.submitted }

// Aborted reports whether the user quit without applying.
func (a App) Aborted() bool { return a.aborted }

// Panel returns the root panel.
func (a App) Panel() Collapsible { return a.panel }

// Selector returns the hosted selector.
func (a App) Selector() Selector {
	s, _ := a.panel.Content().(Selector)
	return s
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.panel.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.aborted = true
			return a, tea.Quit
		case "esc", "q":
			if !a.panel.ContentFocused() {
				a.aborted = true
				return a, tea.Quit
			}
		}

	case DismissMsg:
		a.aborted = true
		return a, tea.Quit

	case ChangeMsg:
		a.values = slices.Clone(msg.Values)
		a.submitted = true
		if a.quitOnChange {
			return a, tea.Quit
		}
		return a, nil

	case ValuesMsg:
		// Reaches the selector even while the panel is closed.
		a.values = slices.Clone(msg.Values)
		var cmd tea.Cmd
		a.panel, cmd = a.panel.forward(msg)
		return a, cmd

	case ToggleMsg:
		// The panel drops messages while closed; replay the size on open.
		if msg.Open && a.width > 0 {
			return a.forward(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		return a, nil
	}

	return a.forward(msg)
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.panel.Update(msg)
	a.panel = m.(Collapsible)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	bg := a.panel.View()
	sel := a.Selector()
	if !a.panel.Open() || !sel.IsOpen() {
		return bg
	}
	// The trigger sits on the first content row, indented by the panel body.
	originX := PanelBodyStyle.GetPaddingLeft()
	x, y := sel.MenuPosition(originX, 1, a.width)
	return CompositeAt(bg, sel.Overlay(), x, y, 0)
}
