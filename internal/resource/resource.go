package resource

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"handoff/internal/lifecycle"
)

// nextID numbers resources so journal entries can be correlated to one
// instance, the way the original transcript printed instance addresses.
var nextID atomic.Uint64

// Resource is an immutable payload holder with an observable lifetime.
type Resource struct {
	id        uint64
	payload   string
	destroyed bool
	journal   *lifecycle.Journal
}

// New constructs a resource and reports the construction.
func New(payload string, journal *lifecycle.Journal) *Resource {
	r := &Resource{
		id:      nextID.Add(1),
		payload: payload,
		journal: journal,
	}
	journal.Record(lifecycle.Event{
		Kind:       lifecycle.EventConstructed,
		ResourceID: r.id,
		Payload:    r.payload,
	})
	log.Debug().Uint64("resource", r.id).Str("payload", r.payload).Msg("resource constructed")
	return r
}

// ID returns the instance sequence number.
func (r *Resource) ID() uint64 {
	return r.id
}

// Payload returns the read-only payload. It stays readable after
// destruction; Destroyed is the liveness check.
func (r *Resource) Payload() string {
	return r.payload
}

// Destroyed reports whether the resource's lifetime has ended.
func (r *Resource) Destroyed() bool {
	return r.destroyed
}

// destroy ends the lifetime. Only a holding slot may call it, which keeps
// destruction tied to slot drop. Repeated calls are no-ops.
func (r *Resource) destroy() {
	if r.destroyed {
		return
	}
	r.destroyed = true
	r.journal.Record(lifecycle.Event{
		Kind:       lifecycle.EventDestroyed,
		ResourceID: r.id,
		Payload:    r.payload,
	})
	log.Debug().Uint64("resource", r.id).Msg("resource destroyed")
}
