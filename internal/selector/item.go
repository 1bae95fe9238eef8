// Package selector holds the selection, search and grouping logic behind the
// multi-select menu. Nothing here renders or performs I/O; the TUI layer feeds
// it items and key-driven events and reads back derived views.
package selector

// AllValues is the bucket name for items that carry no group.
const AllValues = "All Values"

// Item is a single selectable row. Value is the identity; Label is what the
// user sees.
type Item struct {
	Value       string `yaml:"value"`
	Label       string `yaml:"label"`
	Group       string `yaml:"group,omitempty"`
	Tooltip     string `yaml:"tooltip,omitempty"`
	Description string `yaml:"description,omitempty"`
	Example     string `yaml:"example,omitempty"`
}

// GroupName returns the bucket the item belongs to.
func (i Item) GroupName() string {
	if i.Group == "" {
		return AllValues
	}
	return i.Group
}

// DisplayLabel returns Label, falling back to Value when the label is empty.
func (i Item) DisplayLabel() string {
	if i.Label == "" {
		return i.Value
	}
	return i.Label
}

// syntheticItem builds the placeholder used for values that have no backing
// item (freeform entries, or values the caller passed in that are not listed).
func syntheticItem(value string) Item {
	return Item{Value: value, Label: value}
}

// Values returns the Value of every item, in order.
func Values(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Value)
	}
	return out
}
