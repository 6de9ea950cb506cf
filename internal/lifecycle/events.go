package lifecycle

// EventKind is the stable discriminator for journal entries.
type EventKind string

const (
	EventConstructed  EventKind = "resource.constructed"
	EventInspected    EventKind = "relay.inspected"
	EventClaimed      EventKind = "relay.claimed"
	EventOwnerPresent EventKind = "owner.slot_present"
	EventOwnerAbsent  EventKind = "owner.slot_absent"
	EventConsumed     EventKind = "sink.consumed"
	EventDestroyed    EventKind = "resource.destroyed"
)

// Event is a single observed lifecycle transition.
type Event struct {
	Kind EventKind

	// ResourceID correlates events belonging to one resource instance.
	ResourceID uint64

	// Payload carries the resource payload as seen at the event, when the
	// emitting role had read access to it.
	Payload string
}
