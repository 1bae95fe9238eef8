package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/selectkit/internal/scroll"
	"github.com/ruminaider/selectkit/internal/selector"
)

func sendKey(m tea.Model, key string) tea.Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated
}

func sendSpecialKey(m tea.Model, key tea.KeyType) tea.Model {
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated
}

func menuKey(m Menu, key tea.KeyType) (Menu, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: key})
}

func typeQuery(m Menu, q string) Menu {
	for _, r := range q {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// collectMsgs runs cmd and flattens batches. Commands that block (cursor
// blink timers) are abandoned after a short wait.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collectMsgs(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// drive delivers msg and then every message its commands produce, the way
// the Bubble Tea runtime would. It returns the final model and all messages
// emitted along the way.
func drive(m tea.Model, msg tea.Msg) (tea.Model, []tea.Msg) {
	var seen []tea.Msg
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0 && steps < 50; steps++ {
		next := queue[0]
		queue = queue[1:]
		var cmd tea.Cmd
		m, cmd = m.Update(next)
		for _, out := range collectMsgs(cmd) {
			seen = append(seen, out)
			if _, quit := out.(tea.QuitMsg); !quit {
				queue = append(queue, out)
			}
		}
	}
	return m, seen
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if t, ok := msg.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func countMsg[T tea.Msg](msgs []tea.Msg) int {
	n := 0
	for _, msg := range msgs {
		if _, ok := msg.(T); ok {
			n++
		}
	}
	return n
}

func regionItems() []selector.Item {
	return []selector.Item{
		{Value: "a", Label: "Alpha"},
		{Value: "b", Label: "Beta", Group: "G"},
		{Value: "c", Label: "Gamma", Group: "G"},
	}
}

// testMenuConfig disables scroll throttling so key presses are evaluated
// back to back.
func testMenuConfig() MenuConfig {
	return MenuConfig{ScrollOptions: []scroll.Option{scroll.WithThrottle(0)}}
}

func currentValue(m Menu) string {
	r, _ := m.current()
	return r.item.Value
}
