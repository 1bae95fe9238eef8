package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/selectkit/internal/selector"
)

// --- Menu output ---

// SubmitMsg is emitted when the user applies the menu selection.
type SubmitMsg struct{ Values []string }

// CancelMsg is emitted when the user discards the menu selection.
type CancelMsg struct{}

// CloseRequestMsg asks the owner to close the menu. The owner decides between
// submit and cancel based on its submit mode.
type CloseRequestMsg struct{}

// ScrollEndMsg is emitted when the list bottom is reached and no local pages
// remain. Hosts answer with ItemsMsg to load more.
type ScrollEndMsg struct{}

// SearchMsg forwards the query to the host when external search is enabled.
type SearchMsg struct{ Query string }

// --- Menu input ---

// LoadingMsg toggles the fetching state. While loading, the blank-state
// messages are suppressed.
type LoadingMsg struct{ Loading bool }

// ItemsMsg replaces the items, or appends to them when Append is set.
type ItemsMsg struct {
	Items  []selector.Item
	Append bool
}

// --- Selector input ---

// ValuesMsg replaces the committed selection from outside. An open menu
// drops its in-progress changes and starts over from Values.
type ValuesMsg struct{ Values []string }

// --- Selector output ---

// OpenMsg is emitted when the selector menu opens.
type OpenMsg struct{}

// CloseMsg is emitted when the selector menu closes for any reason.
type CloseMsg struct{}

// ChangeMsg is emitted once per submit with the committed values.
type ChangeMsg struct{ Values []string }

// DismissMsg is emitted when esc is pressed on a closed selector.
type DismissMsg struct{}

// --- Collapsible output ---

// ToggleMsg is emitted when the panel opens or closes.
type ToggleMsg struct{ Open bool }

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
