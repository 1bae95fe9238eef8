package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/selectkit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a content model that remembers what it was sent.
type recorder struct {
	got []tea.Msg
}

func (r recorder) Init() tea.Cmd { return nil }

func (r recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	r.got = append(r.got, msg)
	return r, nil
}

func (r recorder) View() string { return "body" }

func received(c Collapsible) []tea.Msg {
	return c.Content().(recorder).got
}

func TestCollapsible_ToggleOpenAndClose(t *testing.T) {
	c := NewCollapsible("Panel", recorder{})
	assert.Equal(t, "> Panel", c.View())

	m, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c = m.(Collapsible)
	assert.True(t, c.Open())
	assert.True(t, c.ContentFocused())
	toggle, ok := findMsg[ToggleMsg](collectMsgs(cmd))
	require.True(t, ok)
	assert.True(t, toggle.Open)
	assert.Contains(t, c.View(), "v Panel")
	assert.Contains(t, c.View(), "  body")

	_, isFocus := findMsg[tea.FocusMsg](received(c))
	assert.True(t, isFocus, "content told it has focus")

	// Back to the title, then close.
	m, _ = c.Update(tea.KeyMsg{Type: tea.KeyTab})
	c = m.(Collapsible)
	assert.False(t, c.ContentFocused())
	_, isBlur := findMsg[tea.BlurMsg](received(c))
	assert.True(t, isBlur)

	m, cmd = c.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	c = m.(Collapsible)
	assert.False(t, c.Open())
	toggle, ok = findMsg[ToggleMsg](collectMsgs(cmd))
	require.True(t, ok)
	assert.False(t, toggle.Open)
}

func TestCollapsible_CloseBlursContent(t *testing.T) {
	c := NewCollapsible("Panel", recorder{})
	c.SetOpen(true)

	m, _ := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c = m.(Collapsible)
	require.False(t, c.Open())
	got := received(c)
	require.Len(t, got, 1)
	assert.IsType(t, tea.BlurMsg{}, got[0])
}

func TestCollapsible_CloseSettlesOpenSelector(t *testing.T) {
	sel := NewSelector(SelectorConfig{
		Items:       regionItems(),
		Menu:        testMenuConfig(),
		SubmitMode:  config.SubmitModeLeave,
		InitialOpen: true,
	})
	c := NewCollapsible("Panel", sel)
	c.SetOpen(true)

	// Pick Alpha through the content, then close the panel from its title.
	var cmd tea.Cmd
	c.content, cmd = c.content.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.Equal(t, []string{"a"}, c.Content().(Selector).Menu().Values())

	m, msgs := drive(c, tea.KeyMsg{Type: tea.KeyEnter})
	c = m.(Collapsible)
	assert.False(t, c.Open())
	s := c.Content().(Selector)
	assert.False(t, s.IsOpen(), "menu closed along with the panel")
	assert.Equal(t, []string{"a"}, s.Values(), "leave mode keeps the changes")
	change, ok := findMsg[ChangeMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, change.Values)
}

func TestCollapsible_Disabled(t *testing.T) {
	c := NewCollapsible("Panel", recorder{})
	c.Disabled = true

	m, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.(Collapsible).Open())
	assert.Nil(t, cmd)
}

func TestCollapsible_ContentOnlyReceivesWhileOpen(t *testing.T) {
	c := NewCollapsible("Panel", recorder{})

	m, _ := c.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	c = m.(Collapsible)
	assert.Empty(t, received(c))

	c.SetOpen(true)
	m, _ = c.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	c = m.(Collapsible)
	assert.Len(t, received(c), 1)

	// Keys stay with the title until focus moves to the content.
	m, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	c = m.(Collapsible)
	assert.Len(t, received(c), 1)

	m, _ = c.Update(tea.KeyMsg{Type: tea.KeyTab})
	c = m.(Collapsible)
	m, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	c = m.(Collapsible)
	got := received(c)
	require.Len(t, got, 3)
	assert.IsType(t, tea.FocusMsg{}, got[1])
	assert.IsType(t, tea.KeyMsg{}, got[2])
}

func TestCollapsible_SetOpenClosesFocus(t *testing.T) {
	c := NewCollapsible("Panel", recorder{})
	c.SetOpen(true)
	m, _ := c.Update(tea.KeyMsg{Type: tea.KeyTab})
	c = m.(Collapsible)
	require.True(t, c.ContentFocused())

	c.SetOpen(false)
	assert.False(t, c.Open())
	assert.False(t, c.ContentFocused())
}

func TestCollapsible_IconRight(t *testing.T) {
	c := NewCollapsible("Panel", recorder{})
	c.IconPosition = IconRight
	assert.Equal(t, "Panel ▾", c.HeaderView())
	c.SetOpen(true)
	assert.Equal(t, "Panel ▴", c.HeaderView())
}
