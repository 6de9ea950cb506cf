package handoff

import (
	"github.com/rs/zerolog/log"

	"handoff/internal/lifecycle"
	"handoff/internal/resource"
)

// Sink is the terminal owner. Its parameter shape is the contract: by the
// time Consume runs, the caller has already relinquished the resource.
type Sink struct {
	journal *lifecycle.Journal
}

// NewSink creates a sink reporting into the given journal.
func NewSink(journal *lifecycle.Journal) *Sink {
	return &Sink{journal: journal}
}

// Consume takes ownership unconditionally and ends the resource's lifetime
// before returning. A nil resource violates the sink's precondition; a
// correct producer never forwards an absent resource.
func (c *Sink) Consume(r *resource.Resource) error {
	if r == nil {
		return resource.ErrAbsentResource
	}

	c.journal.Record(lifecycle.Event{
		Kind:       lifecycle.EventConsumed,
		ResourceID: r.ID(),
		Payload:    r.Payload(),
	})
	log.Info().Uint64("resource", r.ID()).Str("payload", r.Payload()).Msg("sink got the resource")

	// Terminal ownership: the local slot is not persisted beyond this call.
	var last resource.Slot
	if err := last.Fill(r); err != nil {
		return err
	}
	last.Drop()
	return nil
}
