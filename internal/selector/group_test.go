package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupItems_DefaultBucketFirst(t *testing.T) {
	groups := GroupItems([]Item{{Value: "x"}, {Value: "y", Group: "G"}})
	require.Len(t, groups, 2)
	assert.Equal(t, AllValues, groups[0].Name)
	assert.Equal(t, []string{"x"}, Values(groups[0].Items))
	assert.Equal(t, "G", groups[1].Name)
	assert.Equal(t, []string{"y"}, Values(groups[1].Items))
}

func TestGroupItems_FirstSeenOrder(t *testing.T) {
	groups := GroupItems([]Item{
		{Value: "1", Group: "B"},
		{Value: "2", Group: "A"},
		{Value: "3"},
		{Value: "4", Group: "B"},
	})
	require.Len(t, groups, 3)
	assert.Equal(t, AllValues, groups[0].Name, "ungrouped bucket leads even when seen later")
	assert.Equal(t, "B", groups[1].Name)
	assert.Equal(t, []string{"1", "4"}, Values(groups[1].Items))
	assert.Equal(t, "A", groups[2].Name)
}

func TestGroupItems_SingleGroup(t *testing.T) {
	groups := GroupItems([]Item{{Value: "a", Group: "G"}, {Value: "b", Group: "G"}})
	require.Len(t, groups, 1)
	assert.Equal(t, "G", groups[0].Name)
}

func TestGroupItems_Empty(t *testing.T) {
	assert.Empty(t, GroupItems(nil))
	assert.Empty(t, GroupItems([]Item{}))
}

func TestCollapsePolicy_CountFor(t *testing.T) {
	plain := CollapsePolicy{Count: 3}
	assert.Equal(t, 3, plain.CountFor("anything"))

	listed := CollapsePolicy{Count: 3, Whitelist: []string{"Big"}}
	assert.Equal(t, 3, listed.CountFor("Big"))
	assert.Equal(t, 0, listed.CountFor("Small"))

	matched := CollapsePolicy{Count: 2, Match: func(name string) bool { return name == AllValues }}
	assert.Equal(t, 2, matched.CountFor(AllValues))
	assert.Equal(t, 0, matched.CountFor("G"))

	assert.Equal(t, 0, CollapsePolicy{}.CountFor("G"))
}

func TestCollapse(t *testing.T) {
	items := []Item{{Value: "a"}, {Value: "b"}, {Value: "c"}}

	visible, hidden := Collapse(items, 2, false)
	assert.Equal(t, []string{"a", "b"}, Values(visible))
	assert.Equal(t, 1, hidden)

	visible, hidden = Collapse(items, 2, true)
	assert.Len(t, visible, 3)
	assert.Zero(t, hidden)

	visible, hidden = Collapse(items, 3, false)
	assert.Len(t, visible, 3, "group no larger than the count is not collapsed")
	assert.Zero(t, hidden)

	visible, hidden = Collapse(items, 0, false)
	assert.Len(t, visible, 3)
	assert.Zero(t, hidden)
}

func TestPager(t *testing.T) {
	items := make([]Item, 250)
	assert.Equal(t, 3, TotalPages(len(items), PageSize))
	assert.Equal(t, 0, TotalPages(0, PageSize))
	assert.Equal(t, 1, TotalPages(100, PageSize))

	p := NewPager(true)
	assert.Len(t, p.Window(items), 100)

	assert.True(t, p.Advance(len(items)))
	assert.Len(t, p.Window(items), 200)
	assert.True(t, p.Advance(len(items)))
	assert.Len(t, p.Window(items), 250, "clamped, not 300")

	assert.False(t, p.Advance(len(items)))
	assert.Equal(t, 3, p.Page)

	p.Reset()
	assert.Equal(t, 1, p.Page)
}

func TestPager_Disabled(t *testing.T) {
	items := make([]Item, 250)
	p := NewPager(false)
	assert.Len(t, p.Window(items), 250)
	assert.False(t, p.Advance(len(items)))
}
