package state

// NavigationEventKind tells a navigation apart from a reload of the same
// location.
type NavigationEventKind int

const (
	EventNavigated NavigationEventKind = iota
	EventRefreshed
)

func (k NavigationEventKind) String() string {
	if k == EventRefreshed {
		return "refreshed"
	}
	return "navigated"
}

// NavigationEvent is published after a directory listing was applied.
type NavigationEvent struct {
	Kind         NavigationEventKind
	Path         string
	HistoryIndex int
	Entries      int
}

type subscriber struct {
	id int
	fn func(NavigationEvent)
}

// Subscribe registers fn for navigation events and returns a function that
// removes it. Listeners run on the goroutine calling Reduce.
func (r *StateReducer) Subscribe(fn func(NavigationEvent)) func() {
	if fn == nil {
		return func() {}
	}
	r.nextSubscriberID++
	id := r.nextSubscriberID
	r.subscribers = append(r.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range r.subscribers {
			if sub.id == id {
				r.subscribers = append(r.subscribers[:i:i], r.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (r *StateReducer) publish(ev NavigationEvent) {
	for _, sub := range append([]subscriber(nil), r.subscribers...) {
		sub.fn(ev)
	}
}
