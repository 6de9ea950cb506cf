package handoff

import (
	"github.com/rs/zerolog/log"

	"handoff/internal/lifecycle"
	"handoff/internal/resource"
)

// Relay borrows a resource through the lender's slot and, depending on its
// disposition, either merely inspects it or quietly claims it.
type Relay struct {
	claims  bool
	journal *lifecycle.Journal
}

// NewRelay creates a relay that does not claim until told otherwise.
func NewRelay(journal *lifecycle.Journal) *Relay {
	return &Relay{journal: journal}
}

// SetClaimsOwnership sets the disposition for subsequent MaybeClaim calls.
func (b *Relay) SetClaimsOwnership(claim bool) {
	b.claims = claim
}

// ClaimsOwnership reports the current disposition.
func (b *Relay) ClaimsOwnership() bool {
	return b.claims
}

// MaybeClaim receives the lender's slot. Inspection never alters the
// resource. When the disposition says claim, the resource moves into a
// call-local slot that is dropped before return, so the lender's slot is
// empty and the resource is already destroyed by the time MaybeClaim
// returns.
func (b *Relay) MaybeClaim(lent *resource.Slot) {
	held := lent.Peek()
	if held == nil {
		log.Warn().Msg("relay lent an empty slot, nothing to inspect")
		return
	}

	b.journal.Record(lifecycle.Event{
		Kind:       lifecycle.EventInspected,
		ResourceID: held.ID(),
		Payload:    held.Payload(),
	})
	log.Info().Uint64("resource", held.ID()).Str("payload", held.Payload()).Msg("relay got the resource")

	if !b.claims {
		return
	}

	// The claim: take it out of the lender's slot into a local one that
	// does not outlive this call.
	var mine resource.Slot
	_ = mine.Fill(lent.Take())
	b.journal.Record(lifecycle.Event{
		Kind:       lifecycle.EventClaimed,
		ResourceID: held.ID(),
		Payload:    held.Payload(),
	})
	log.Info().Uint64("resource", held.ID()).Msg("relay claimed the resource for itself")
	mine.Drop()
}
