package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Default menu dimensions.
const (
	MenuWidth      = 44
	MenuListHeight = 10
	// descriptionWidth is the side panel shown when items carry descriptions.
	descriptionWidth = 28
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// List styles.
var (
	// HeaderStyle is used for group headers.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// SelectedStyle is used for checked items.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// UnselectedStyle is used for unchecked items.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// DimStyle is used for disabled rows, messages and scroll hints.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// CurrentStyle highlights the row under the cursor.
	CurrentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	// FreeformTagStyle marks values typed in by the user.
	FreeformTagStyle = lipgloss.NewStyle().
				Foreground(colorPeach).
				Italic(true)

	// ExpandStyle is used for the "N more" / "show less" rows.
	ExpandStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	// GroupMessageStyle is used for the note rendered under a group header.
	GroupMessageStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Italic(true)
)

// Menu chrome.
var (
	// MenuStyle is the border and background of the popup menu.
	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(0, 1)

	// SeparatorStyle draws the rule between the search field and the list.
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(colorSurface1)

	// TooltipStyle is used for the hint line above the status bar.
	TooltipStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// DisabledMessageStyle is used when the highlighted row cannot be toggled.
	DisabledMessageStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	// DescriptionStyle wraps the side panel for item descriptions.
	DescriptionStyle = lipgloss.NewStyle().
				Width(descriptionWidth).
				PaddingLeft(1).
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorSurface1)

	// DescriptionTitleStyle is the first line of the description panel.
	DescriptionTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the menu footer.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the footer.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// Trigger and panel styles.
var (
	// TriggerStyle is the closed selector line.
	TriggerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 1)

	// TriggerFocusedStyle is the selector line while it has focus.
	TriggerFocusedStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorBlue).
				Padding(0, 1)

	// PlaceholderStyle is used when nothing is selected yet.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Italic(true)

	// PanelTitleStyle is the collapsible panel header.
	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	// PanelTitleFocusedStyle is the header while it has focus.
	PanelTitleFocusedStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// PanelBodyStyle indents the panel content.
	PanelBodyStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
