package handoff

import (
	"errors"
	"fmt"
	"strings"

	"handoff/internal/lifecycle"
)

var ErrUnknownScenario = errors.New("handoff: unknown scenario")

// Scenario selects the relay disposition for one Produce run.
type Scenario string

const (
	// ScenarioHonest lends to a relay that only inspects; the resource
	// comes back and reaches the sink.
	ScenarioHonest Scenario = "honest"

	// ScenarioClaiming flips the relay's disposition first; the resource
	// is lost inside the relay and the sink is skipped.
	ScenarioClaiming Scenario = "claiming"
)

// ParseScenario maps a config/flag value to a scenario.
func ParseScenario(raw string) (Scenario, error) {
	switch Scenario(strings.ToLower(strings.TrimSpace(raw))) {
	case ScenarioHonest:
		return ScenarioHonest, nil
	case ScenarioClaiming:
		return ScenarioClaiming, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScenario, raw)
	}
}

// Demo holds one producer/relay/sink trio sharing a journal, reused across
// scenario runs like the original back-to-back demonstration.
type Demo struct {
	journal  *lifecycle.Journal
	relay    *Relay
	sink     *Sink
	producer *Producer
}

// NewDemo wires the roles around a shared journal.
func NewDemo(payload string) *Demo {
	journal := lifecycle.NewJournal()
	relay := NewRelay(journal)
	sink := NewSink(journal)
	return &Demo{
		journal:  journal,
		relay:    relay,
		sink:     sink,
		producer: NewProducer(relay, sink, journal, payload),
	}
}

// Journal exposes the shared lifecycle record.
func (d *Demo) Journal() *lifecycle.Journal {
	return d.journal
}

// Run sets the relay disposition for the scenario and produces once.
func (d *Demo) Run(s Scenario) error {
	switch s {
	case ScenarioHonest:
		d.relay.SetClaimsOwnership(false)
	case ScenarioClaiming:
		d.relay.SetClaimsOwnership(true)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScenario, s)
	}
	return d.producer.Produce()
}
