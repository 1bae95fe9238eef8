package selector

// SyncRequest is handed to an OnSync override. PrevValues is the selection
// before the click; SelectValues holds the clicked value, or every member of a
// clicked group.
type SyncRequest struct {
	PrevValues   []string
	SelectValues []string
}

// SyncFunc replaces the default toggle logic entirely. Its return value
// becomes the new selection verbatim.
type SyncFunc func(SyncRequest) []string

// Options configures a State. The zero value is a plain multi-select with no
// limit, no freeform entry and no paging.
type Options struct {
	Freeform       bool
	GroupSelect    bool
	InfiniteScroll bool
	Collapse       CollapsePolicy
	// LimitCount caps the selection size. Zero means unlimited.
	LimitCount     int
	DisabledValues []string
	OnSync         SyncFunc
}

// Outcome reports what a scroll-end event did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomePageAdvanced means another local page was revealed.
	OutcomePageAdvanced
	// OutcomeScrollEndReached means local pages are exhausted and the caller
	// should be told (e.g. to fetch more items).
	OutcomeScrollEndReached
)

// State is the transient selection, search and paging state of one open
// menu. It is a value: every transition returns a new State and leaves the
// receiver untouched.
type State struct {
	items    []Item
	values   []string
	freeform []string
	query    string
	pager    Pager
	opts     Options
	disabled map[string]struct{}
}

// New creates the state for a freshly opened menu.
func New(items []Item, values []string, opts Options) State {
	disabled := make(map[string]struct{}, len(opts.DisabledValues))
	for _, v := range opts.DisabledValues {
		disabled[v] = struct{}{}
	}
	return State{
		items:    items,
		values:   cloneStrings(values),
		pager:    NewPager(opts.InfiniteScroll),
		opts:     opts,
		disabled: disabled,
	}
}

// --- Accessors ---

// Items returns the full item snapshot.
func (s State) Items() []Item { return s.items }

// Options returns the options the state was created with.
func (s State) Options() Options { return s.opts }

// Values returns a copy of the selection, in selection order.
func (s State) Values() []string { return cloneStrings(s.values) }

// FreeformValues returns a copy of the values tagged as freeform.
func (s State) FreeformValues() []string { return cloneStrings(s.freeform) }

// Query returns the current search query.
func (s State) Query() string { return s.query }

// Page returns the current infinite-scroll page, starting at 1.
func (s State) Page() int { return s.pager.Page }

// TotalPages returns the number of local pages.
func (s State) TotalPages() int { return TotalPages(len(s.items), s.pager.Size) }

// IsSelected reports whether value is in the selection.
func (s State) IsSelected(value string) bool {
	return indexOf(s.values, value) >= 0
}

// IsFreeform reports whether value was added as a freeform entry.
func (s State) IsFreeform(value string) bool {
	return indexOf(s.freeform, value) >= 0
}

// LimitExceeded reports whether the selection has reached LimitCount.
func (s State) LimitExceeded() bool {
	return s.opts.LimitCount > 0 && len(s.values) >= s.opts.LimitCount
}

// IsDisabled reports whether value is blocked from being selected. Selected
// values are never disabled so they can always be deselected.
func (s State) IsDisabled(value string) bool {
	if s.IsSelected(value) {
		return false
	}
	if _, ok := s.disabled[value]; ok {
		return true
	}
	return s.LimitExceeded()
}

// GroupSelectDisabled reports whether a bulk selection of n items would
// overrun the remaining headroom under LimitCount.
func (s State) GroupSelectDisabled(n int) bool {
	return s.opts.LimitCount > 0 && n > s.opts.LimitCount-len(s.values)
}

// SearchResults returns the items matching the current query.
func (s State) SearchResults() []Item {
	return Search(s.items, s.query, SearchOptions{Freeform: s.opts.Freeform})
}

// RenderedItems returns the paged window of items.
func (s State) RenderedItems() []Item {
	return s.pager.Window(s.items)
}

// Groups buckets the rendered window.
func (s State) Groups() []Group {
	return GroupItems(s.RenderedItems())
}

// SelectedItems maps the selection back to items. Values without a backing
// item come back as {value, value}.
func (s State) SelectedItems() []Item {
	byValue := make(map[string]Item, len(s.items))
	for _, it := range s.items {
		if _, ok := byValue[it.Value]; !ok {
			byValue[it.Value] = it
		}
	}
	out := make([]Item, 0, len(s.values))
	for _, v := range s.values {
		if it, ok := byValue[v]; ok {
			out = append(out, it)
			continue
		}
		out = append(out, syntheticItem(v))
	}
	return out
}

// GroupMembers returns the unique values of the items bucketed under name.
// Freeform entries never belong to a group.
func (s State) GroupMembers(name string) []string {
	return groupValues(s.items, name)
}

// GroupFullySelected reports whether every member of the group is selected.
func (s State) GroupFullySelected(name string) bool {
	members := s.GroupMembers(name)
	if len(members) == 0 {
		return false
	}
	for _, v := range members {
		if !s.IsSelected(v) {
			return false
		}
	}
	return true
}

// CollapseCountFor returns how many items the group shows while collapsed.
func (s State) CollapseCountFor(name string) int {
	return s.opts.Collapse.CountFor(name)
}

// --- Transitions ---

// ToggleItem selects or deselects value. Disabled values are ignored. With an
// OnSync override the override decides the new selection alone.
func (s State) ToggleItem(value string) State {
	if s.IsDisabled(value) {
		return s
	}
	prev := s.values
	s.values = s.resolve([]string{value}, func() []string {
		if indexOf(prev, value) >= 0 {
			return removeValues(prev, map[string]struct{}{value: {}})
		}
		return appendValues(prev, value)
	})
	return s
}

// ToggleFreeformItem tags value as freeform and toggles it.
func (s State) ToggleFreeformItem(value string) State {
	if s.IsDisabled(value) {
		return s
	}
	if !s.IsFreeform(value) {
		s.freeform = appendValues(s.freeform, value)
	}
	return s.ToggleItem(value)
}

// ToggleGroup selects every member of the group, or deselects them all when
// the group is already fully selected. Other selections keep their order.
func (s State) ToggleGroup(name string) State {
	members := s.GroupMembers(name)
	if len(members) == 0 {
		return s
	}
	prev := s.values
	full := s.GroupFullySelected(name)
	s.values = s.resolve(members, func() []string {
		if full {
			set := make(map[string]struct{}, len(members))
			for _, v := range members {
				set[v] = struct{}{}
			}
			return removeValues(prev, set)
		}
		return unionValues(prev, members)
	})
	return s
}

// SelectAllSearched appends every selectable search result not yet selected.
// Disabled values are skipped, and nothing happens when the remaining results
// would not fit under the limit.
func (s State) SelectAllSearched() State {
	var add []string
	for _, it := range s.SearchResults() {
		if s.IsSelected(it.Value) || s.IsDisabled(it.Value) || indexOf(add, it.Value) >= 0 {
			continue
		}
		add = append(add, it.Value)
	}
	if len(add) == 0 || s.GroupSelectDisabled(len(add)) {
		return s
	}
	s.values = unionValues(s.values, add)
	return s
}

// SetQuery updates the search query. Changing the query rewinds paging.
func (s State) SetQuery(query string) State {
	if query != s.query {
		s.pager.Reset()
	}
	s.query = query
	return s
}

// ScrollEnd reacts to the list reaching its bottom edge. Applying it again
// on the last page keeps reporting OutcomeScrollEndReached without moving
// the page.
func (s State) ScrollEnd() (State, Outcome) {
	if s.pager.Advance(len(s.items)) {
		return s, OutcomePageAdvanced
	}
	return s, OutcomeScrollEndReached
}

// WithItems swaps the item snapshot, keeping selection, query and page.
func (s State) WithItems(items []Item) State {
	s.items = items
	return s
}

// Reset discards in-progress changes and returns to the given values.
func (s State) Reset(values []string) State {
	return New(s.items, values, s.opts)
}

// Submit returns the selection to hand to the caller.
func (s State) Submit() []string {
	return s.Values()
}

func (s State) resolve(selectValues []string, fallback func() []string) []string {
	if s.opts.OnSync != nil {
		return cloneStrings(s.opts.OnSync(SyncRequest{
			PrevValues:   cloneStrings(s.values),
			SelectValues: cloneStrings(selectValues),
		}))
	}
	return fallback()
}

// --- slice helpers (never mutate their inputs) ---

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func indexOf(list []string, v string) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

func appendValues(list []string, v string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

func removeValues(list []string, drop map[string]struct{}) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, ok := drop[v]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}

// unionValues appends the missing values of add to list, deduplicating the
// result while keeping first occurrences in place.
func unionValues(list, add []string) []string {
	seen := make(map[string]struct{}, len(list)+len(add))
	out := make([]string, 0, len(list)+len(add))
	for _, v := range append(cloneStrings(list), add...) {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
