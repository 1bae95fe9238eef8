package selector

// CollapsePolicy decides how many items a group shows before the user has to
// expand it.
type CollapsePolicy struct {
	// Count is the number of items shown while collapsed. Zero disables
	// collapsing.
	Count int
	// Whitelist limits collapsing to the named groups.
	Whitelist []string
	// Match limits collapsing to groups it returns true for. Ignored when
	// Whitelist is set.
	Match func(name string) bool
}

// CountFor returns the collapse count for a group, or 0 when the group is
// never collapsed.
func (p CollapsePolicy) CountFor(name string) int {
	switch {
	case p.Whitelist != nil:
		for _, w := range p.Whitelist {
			if w == name {
				return p.Count
			}
		}
		return 0
	case p.Match != nil:
		if p.Match(name) {
			return p.Count
		}
		return 0
	default:
		return p.Count
	}
}

// Collapse returns the items to display and how many are hidden. Collapsing
// applies only when count is positive and the group is larger than count.
func Collapse(items []Item, count int, expanded bool) ([]Item, int) {
	if expanded || count <= 0 || len(items) <= count {
		return items, 0
	}
	return items[:count], len(items) - count
}
