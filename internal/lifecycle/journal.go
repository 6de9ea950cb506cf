package lifecycle

// Journal is an append-only record of lifecycle events in emission order.
//
// A nil *Journal is valid and records nothing, so callers never need to
// branch on whether observation is wired in.
type Journal struct {
	events []Event
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{events: make([]Event, 0)}
}

// Record appends one event. Order of appends is the order of observation.
func (j *Journal) Record(ev Event) {
	if j == nil {
		return
	}
	j.events = append(j.events, ev)
}

// Events returns a copy of the recorded events.
func (j *Journal) Events() []Event {
	if j == nil {
		return nil
	}
	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out
}

// Kinds returns just the event kinds, in recorded order.
func (j *Journal) Kinds() []EventKind {
	if j == nil {
		return nil
	}
	out := make([]EventKind, 0, len(j.events))
	for _, ev := range j.events {
		out = append(out, ev.Kind)
	}
	return out
}

// Len reports the number of recorded events.
func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.events)
}

// Reset clears the journal between runs.
func (j *Journal) Reset() {
	if j == nil {
		return
	}
	j.events = j.events[:0]
}
