package selector

// Event is an input to State.Apply.
type Event interface {
	isEvent()
}

// ToggleItemEvent toggles a single value.
type ToggleItemEvent struct{ Value string }

// ToggleFreeformEvent adds or removes a freeform entry.
type ToggleFreeformEvent struct{ Value string }

// ToggleGroupEvent toggles every member of a group.
type ToggleGroupEvent struct{ Name string }

// SelectAllSearchedEvent selects every current search result.
type SelectAllSearchedEvent struct{}

// QueryEvent replaces the search query.
type QueryEvent struct{ Query string }

// ScrollEndEvent signals the list reached its bottom edge.
type ScrollEndEvent struct{}

// ItemsEvent replaces the item snapshot.
type ItemsEvent struct{ Items []Item }

// ResetEvent discards changes and returns to Values.
type ResetEvent struct{ Values []string }

func (ToggleItemEvent) isEvent()        {}
func (ToggleFreeformEvent) isEvent()    {}
func (ToggleGroupEvent) isEvent()       {}
func (SelectAllSearchedEvent) isEvent() {}
func (QueryEvent) isEvent()             {}
func (ScrollEndEvent) isEvent()         {}
func (ItemsEvent) isEvent()             {}
func (ResetEvent) isEvent()             {}

// Apply runs a single event through the state machine. Unknown events leave
// the state unchanged.
func (s State) Apply(ev Event) (State, Outcome) {
	switch e := ev.(type) {
	case ToggleItemEvent:
		return s.ToggleItem(e.Value), OutcomeNone
	case ToggleFreeformEvent:
		return s.ToggleFreeformItem(e.Value), OutcomeNone
	case ToggleGroupEvent:
		return s.ToggleGroup(e.Name), OutcomeNone
	case SelectAllSearchedEvent:
		return s.SelectAllSearched(), OutcomeNone
	case QueryEvent:
		return s.SetQuery(e.Query), OutcomeNone
	case ScrollEndEvent:
		return s.ScrollEnd()
	case ItemsEvent:
		return s.WithItems(e.Items), OutcomeNone
	case ResetEvent:
		return s.Reset(e.Values), OutcomeNone
	}
	return s, OutcomeNone
}
