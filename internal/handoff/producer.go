package handoff

import (
	"github.com/rs/zerolog/log"

	"handoff/internal/lifecycle"
	"handoff/internal/resource"
)

// Producer constructs the resource into its own slot and runs one full
// handoff sequence per Produce call.
type Producer struct {
	slot    resource.Slot
	relay   *Relay
	sink    *Sink
	journal *lifecycle.Journal
	payload string
}

// NewProducer wires a producer to its relay and sink.
func NewProducer(relay *Relay, sink *Sink, journal *lifecycle.Journal, payload string) *Producer {
	return &Producer{
		relay:   relay,
		sink:    sink,
		journal: journal,
		payload: payload,
	}
}

// Holding reports whether the producer's slot currently owns the resource.
func (p *Producer) Holding() bool {
	return p.slot.Holding()
}

// Produce runs one handoff: construct, lend to the relay, then either
// forward to the sink or report the loss. On every return path the
// producer's slot ends up empty.
func (p *Producer) Produce() error {
	log.Info().Msg("producer producing a resource")
	r := resource.New(p.payload, p.journal)
	if err := p.slot.Fill(r); err != nil {
		return err
	}

	log.Info().Uint64("resource", r.ID()).Msg("producer lending the resource")
	p.relay.MaybeClaim(&p.slot)

	log.Info().Bool("present", p.slot.Holding()).Msg("producer checking the slot after lending")
	if p.slot.Holding() {
		p.journal.Record(lifecycle.Event{
			Kind:       lifecycle.EventOwnerPresent,
			ResourceID: r.ID(),
			Payload:    r.Payload(),
		})
		if err := p.sink.Consume(p.slot.Take()); err != nil {
			return err
		}
	} else {
		p.journal.Record(lifecycle.Event{
			Kind:       lifecycle.EventOwnerAbsent,
			ResourceID: r.ID(),
		})
		log.Info().Msg("dishonest relay kept the resource, skipping the sink")
	}

	log.Info().Bool("empty", !p.slot.Holding()).Msg("producer slot should be empty now")
	return nil
}
