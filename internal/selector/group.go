package selector

// Group is a named bucket of items, in list order.
type Group struct {
	Name  string
	Items []Item
}

// GroupItems partitions items by group. Ungrouped items land in AllValues,
// which always comes first; named groups follow in first-seen order. Empty
// buckets are left out, so an empty list yields no groups.
func GroupItems(items []Item) []Group {
	buckets := map[string]int{AllValues: 0}
	groups := []Group{{Name: AllValues}}

	for _, it := range items {
		name := it.GroupName()
		idx, ok := buckets[name]
		if !ok {
			idx = len(groups)
			buckets[name] = idx
			groups = append(groups, Group{Name: name})
		}
		groups[idx].Items = append(groups[idx].Items, it)
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.Items) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// groupValues returns the unique values of the items that belong to name.
func groupValues(items []Item, name string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range items {
		if it.GroupName() != name {
			continue
		}
		if _, ok := seen[it.Value]; ok {
			continue
		}
		seen[it.Value] = struct{}{}
		out = append(out, it.Value)
	}
	return out
}
