package form

import "pwgate/cmd/security/password"

// EventKind classifies a form change.
type EventKind uint8

const (
	EventEdited EventKind = iota + 1
	EventFocused
	EventBlurred
	EventSubmitted
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventEdited:
		return "edited"
	case EventFocused:
		return "focused"
	case EventBlurred:
		return "blurred"
	case EventSubmitted:
		return "submitted"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after each change is fully applied.
type Event struct {
	Kind     EventKind
	Field    FieldID
	Snapshot Snapshot
}

// FieldSnapshot is the render model of one field. The text itself is never exposed.
type FieldSnapshot struct {
	Length int
	Error  string
}

// Snapshot is the render model of the whole form.
type Snapshot struct {
	Strict          bool
	Focused         FieldID
	NewPassword     FieldSnapshot
	ConfirmPassword FieldSnapshot
	Criteria        []password.CriterionState
}

type observer struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for every subsequent Event and returns a function
// that removes it. Observers are called in subscription order.
func (f *Form) Subscribe(fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	f.nextObserverID++
	id := f.nextObserverID
	f.observers = append(f.observers, observer{id: id, fn: fn})

	return func() {
		for i, o := range f.observers {
			if o.id == id {
				f.observers = append(f.observers[:i:i], f.observers[i+1:]...)
				return
			}
		}
	}
}

func (f *Form) emit(kind EventKind, field FieldID) {
	if len(f.observers) == 0 {
		return
	}
	ev := Event{Kind: kind, Field: field, Snapshot: f.Snapshot()}
	for _, o := range append([]observer(nil), f.observers...) {
		o.fn(ev)
	}
}
