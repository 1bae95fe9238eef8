package selector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regionItems() []Item {
	return []Item{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B", Group: "G"},
		{Value: "c", Label: "C", Group: "G"},
		{Value: "d", Label: "D", Group: "H"},
	}
}

func TestState_ToggleItemAppendsAndRemoves(t *testing.T) {
	s := New(regionItems(), []string{"a"}, Options{})

	s = s.ToggleItem("b")
	assert.Equal(t, []string{"a", "b"}, s.Values())

	s = s.ToggleItem("d")
	assert.Equal(t, []string{"a", "b", "d"}, s.Values(), "selection order is click order")

	s = s.ToggleItem("b")
	assert.Equal(t, []string{"a", "d"}, s.Values())
}

func TestState_ToggleTwiceRestores(t *testing.T) {
	start := New(regionItems(), []string{"c", "a"}, Options{})
	for _, v := range []string{"a", "b", "c", "d", "freeform"} {
		s := start.ToggleItem(v).ToggleItem(v)
		if start.IsSelected(v) {
			// Removing then re-adding moves v to the end; the set is unchanged.
			assert.ElementsMatch(t, start.Values(), s.Values(), v)
			continue
		}
		assert.Equal(t, start.Values(), s.Values(), v)
	}
}

func TestState_TransitionsDoNotMutateReceiver(t *testing.T) {
	s := New(regionItems(), []string{"a"}, Options{})
	next := s.ToggleItem("b").ToggleGroup("G").SetQuery("x")
	assert.Equal(t, []string{"a"}, s.Values())
	assert.Empty(t, s.Query())
	assert.Equal(t, []string{"a", "b", "c"}, next.Values())
}

func TestState_OnSyncReplacesDefaultLogic(t *testing.T) {
	var calls []SyncRequest
	opts := Options{OnSync: func(req SyncRequest) []string {
		calls = append(calls, req)
		return []string{"z"}
	}}
	s := New(regionItems(), []string{"a"}, opts)

	s = s.ToggleItem("b")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"a"}, calls[0].PrevValues)
	assert.Equal(t, []string{"b"}, calls[0].SelectValues)
	assert.Equal(t, []string{"z"}, s.Values(), "override result adopted verbatim")

	s = s.ToggleGroup("G")
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"z"}, calls[1].PrevValues)
	assert.Equal(t, []string{"b", "c"}, calls[1].SelectValues)
}

func TestState_OnSyncResultIsCopied(t *testing.T) {
	shared := []string{"a", "b"}
	s := New(regionItems(), nil, Options{OnSync: func(SyncRequest) []string { return shared }})
	s = s.ToggleItem("a")
	shared[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.Values())
}

func TestState_ToggleGroup(t *testing.T) {
	s := New(regionItems(), []string{"d", "b"}, Options{GroupSelect: true})

	s = s.ToggleGroup("G")
	assert.Equal(t, []string{"d", "b", "c"}, s.Values(), "missing members appended, existing order kept")
	assert.True(t, s.GroupFullySelected("G"))

	s = s.ToggleItem("a")
	s = s.ToggleGroup("G")
	assert.Equal(t, []string{"d", "a"}, s.Values(), "fully selected group removed, others keep relative order")
}

func TestState_ToggleGroupAllValuesBucket(t *testing.T) {
	s := New(regionItems(), nil, Options{})
	s = s.ToggleGroup(AllValues)
	assert.Equal(t, []string{"a"}, s.Values())
}

func TestState_ToggleGroupIgnoresFreeformValues(t *testing.T) {
	s := New(regionItems(), []string{"G"}, Options{Freeform: true})
	s = s.ToggleFreeformItem("custom")
	s = s.ToggleGroup("G")
	assert.Equal(t, []string{"G", "custom", "b", "c"}, s.Values())
	s = s.ToggleGroup("G")
	assert.Equal(t, []string{"G", "custom"}, s.Values(), "freeform values are never group members")
}

func TestState_ToggleUnknownGroupIsNoop(t *testing.T) {
	called := false
	s := New(regionItems(), []string{"a"}, Options{OnSync: func(SyncRequest) []string {
		called = true
		return nil
	}})
	s = s.ToggleGroup("missing")
	assert.Equal(t, []string{"a"}, s.Values())
	assert.False(t, called)
}

func TestState_ToggleGroupDedupesDuplicateItems(t *testing.T) {
	items := []Item{{Value: "x", Group: "G"}, {Value: "x", Group: "G"}, {Value: "y", Group: "G"}}
	s := New(items, []string{"x"}, Options{})
	s = s.ToggleGroup("G")
	assert.Equal(t, []string{"x", "y"}, s.Values())
	s = s.ToggleGroup("G")
	assert.Empty(t, s.Values())
}

func TestState_SelectAllSearched(t *testing.T) {
	s := New(regionItems(), []string{"c"}, Options{})
	s = s.SetQuery("c").SelectAllSearched()
	assert.Equal(t, []string{"c"}, s.Values())

	items := []Item{{Value: "us-1"}, {Value: "us-2"}, {Value: "eu-1"}}
	s = New(items, []string{"eu-1", "us-2"}, Options{})
	s = s.SetQuery("us").SelectAllSearched()
	assert.Equal(t, []string{"eu-1", "us-2", "us-1"}, s.Values())
}

func TestState_SelectAllSearchedHonoursLimitAndDisabled(t *testing.T) {
	items := []Item{{Value: "a1"}, {Value: "a2"}, {Value: "a3"}, {Value: "b"}}

	s := New(items, nil, Options{LimitCount: 1, DisabledValues: []string{"a3"}})
	s = s.SetQuery("a").SelectAllSearched()
	assert.Empty(t, s.Values(), "two selectable results do not fit under a limit of one")

	s = New(items, nil, Options{LimitCount: 3, DisabledValues: []string{"a3"}})
	s = s.SetQuery("a").SelectAllSearched()
	assert.Equal(t, []string{"a1", "a2"}, s.Values(), "disabled results are skipped")

	s = New(items, []string{"b", "a1"}, Options{LimitCount: 2})
	s = s.SetQuery("a").SelectAllSearched()
	assert.Equal(t, []string{"b", "a1"}, s.Values(), "nothing is added at the limit")
}

func TestState_SelectAllSearchedWithoutQuery(t *testing.T) {
	s := New(regionItems(), nil, Options{})
	assert.Empty(t, s.SelectAllSearched().Values())
}

func TestState_FreeformTagging(t *testing.T) {
	s := New(regionItems(), nil, Options{Freeform: true})
	s = s.ToggleFreeformItem("custom")
	assert.True(t, s.IsSelected("custom"))
	assert.True(t, s.IsFreeform("custom"))

	s = s.ToggleItem("custom")
	assert.False(t, s.IsSelected("custom"))
	assert.True(t, s.IsFreeform("custom"), "the freeform tag outlives the selection")

	selected := s.ToggleItem("custom").SelectedItems()
	require.Len(t, selected, 1)
	assert.Equal(t, Item{Value: "custom", Label: "custom"}, selected[0])
}

func TestState_LimitAndDisabled(t *testing.T) {
	s := New(regionItems(), []string{"a"}, Options{LimitCount: 2, DisabledValues: []string{"d"}})
	assert.False(t, s.LimitExceeded())
	assert.True(t, s.IsDisabled("d"))
	assert.False(t, s.IsDisabled("b"))

	s = s.ToggleItem("d")
	assert.Equal(t, []string{"a"}, s.Values(), "disabled values cannot be selected")

	s = s.ToggleItem("b")
	assert.True(t, s.LimitExceeded())
	assert.True(t, s.IsDisabled("c"), "unselected items blocked at the limit")
	assert.False(t, s.IsDisabled("a"), "selected items never blocked by the limit")
	assert.False(t, s.IsDisabled("b"))

	s = s.ToggleItem("c")
	assert.Equal(t, []string{"a", "b"}, s.Values())

	s = s.ToggleItem("a")
	assert.Equal(t, []string{"b"}, s.Values(), "deselecting still works at the limit")
}

func TestState_GroupSelectDisabled(t *testing.T) {
	s := New(regionItems(), []string{"a"}, Options{LimitCount: 3})
	assert.False(t, s.GroupSelectDisabled(2))
	assert.True(t, s.GroupSelectDisabled(3))

	unlimited := New(regionItems(), nil, Options{})
	assert.False(t, unlimited.GroupSelectDisabled(1000))
}

func TestState_SetQueryResetsPage(t *testing.T) {
	items := make([]Item, 250)
	for i := range items {
		items[i] = Item{Value: fmt.Sprintf("v%03d", i)}
	}
	s := New(items, nil, Options{InfiniteScroll: true})
	s, outcome := s.ScrollEnd()
	assert.Equal(t, OutcomePageAdvanced, outcome)
	assert.Equal(t, 2, s.Page())

	assert.Equal(t, 2, s.SetQuery("").Page(), "same query keeps the page")
	assert.Equal(t, 1, s.SetQuery("v1").Page())
}

func TestState_ScrollEndPagination(t *testing.T) {
	items := make([]Item, 250)
	for i := range items {
		items[i] = Item{Value: fmt.Sprintf("v%03d", i)}
	}
	s := New(items, nil, Options{InfiniteScroll: true})
	assert.Equal(t, 3, s.TotalPages())
	assert.Len(t, s.RenderedItems(), 100)

	var outcome Outcome
	s, outcome = s.ScrollEnd()
	assert.Equal(t, OutcomePageAdvanced, outcome)
	s, outcome = s.ScrollEnd()
	assert.Equal(t, OutcomePageAdvanced, outcome)
	assert.Len(t, s.RenderedItems(), 250)

	s, outcome = s.ScrollEnd()
	assert.Equal(t, OutcomeScrollEndReached, outcome)
	s, outcome = s.ScrollEnd()
	assert.Equal(t, OutcomeScrollEndReached, outcome, "repeat signals never over-advance")
	assert.Equal(t, 3, s.Page())
	assert.Len(t, s.RenderedItems(), 250)
}

func TestState_ScrollEndWithoutInfiniteScroll(t *testing.T) {
	s := New(regionItems(), nil, Options{})
	s, outcome := s.ScrollEnd()
	assert.Equal(t, OutcomeScrollEndReached, outcome)
	assert.Len(t, s.RenderedItems(), 4)
}

func TestState_GroupsUseRenderedWindow(t *testing.T) {
	items := make([]Item, 150)
	for i := range items {
		g := "first"
		if i >= 100 {
			g = "second"
		}
		items[i] = Item{Value: fmt.Sprintf("v%03d", i), Group: g}
	}
	s := New(items, nil, Options{InfiniteScroll: true})
	groups := s.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "first", groups[0].Name)

	s, _ = s.ScrollEnd()
	assert.Len(t, s.Groups(), 2)
}

func TestState_WithItemsKeepsSelection(t *testing.T) {
	s := New(regionItems(), []string{"a"}, Options{})
	s = s.WithItems(append(regionItems(), Item{Value: "e", Label: "E"}))
	assert.Equal(t, []string{"a"}, s.Values())
	assert.Len(t, s.Items(), 5)
}

func TestState_Reset(t *testing.T) {
	s := New(regionItems(), []string{"a"}, Options{Freeform: true})
	s = s.ToggleFreeformItem("x").SetQuery("q")
	s = s.Reset([]string{"b"})
	assert.Equal(t, []string{"b"}, s.Values())
	assert.Empty(t, s.FreeformValues())
	assert.Empty(t, s.Query())
	assert.Equal(t, 1, s.Page())
}

func TestState_Apply(t *testing.T) {
	s := New(regionItems(), nil, Options{InfiniteScroll: true})
	events := []Event{
		ToggleItemEvent{Value: "a"},
		ToggleGroupEvent{Name: "G"},
		QueryEvent{Query: "d"},
		SelectAllSearchedEvent{},
		ToggleFreeformEvent{Value: "free"},
	}
	for _, ev := range events {
		s, _ = s.Apply(ev)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "free"}, s.Values())

	_, outcome := s.Apply(ScrollEndEvent{})
	assert.Equal(t, OutcomeScrollEndReached, outcome)

	s, _ = s.Apply(ResetEvent{Values: []string{"c"}})
	assert.Equal(t, []string{"c"}, s.Values())
}

// Items a, b(G); start with [a]; click b; submit.
func TestState_EndToEnd(t *testing.T) {
	items := []Item{{Value: "a", Label: "A"}, {Value: "b", Label: "B", Group: "G"}}
	s := New(items, []string{"a"}, Options{})
	s = s.ToggleItem("b")
	assert.Equal(t, []string{"a", "b"}, s.Submit())
}
