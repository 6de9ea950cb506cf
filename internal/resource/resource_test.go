package resource

import (
	"testing"

	"handoff/internal/lifecycle"
	"handoff/internal/testutil/testlog"
)

func TestNewRecordsConstruction(t *testing.T) {
	testlog.Start(t)
	j := lifecycle.NewJournal()
	r := New("Hello, World!", j)

	events := j.Events()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	ev := events[0]
	if ev.Kind != lifecycle.EventConstructed {
		t.Fatalf("unexpected kind: %q", ev.Kind)
	}
	if ev.ResourceID != r.ID() {
		t.Fatalf("event id mismatch: event=%d resource=%d", ev.ResourceID, r.ID())
	}
	if ev.Payload != "Hello, World!" {
		t.Fatalf("unexpected payload: %q", ev.Payload)
	}
}

func TestPayloadReadableAfterDestruction(t *testing.T) {
	testlog.Start(t)
	j := lifecycle.NewJournal()
	r := New("still here", j)

	var s Slot
	if err := s.Fill(r); err != nil {
		t.Fatalf("fill: %v", err)
	}
	s.Drop()

	if !r.Destroyed() {
		t.Fatalf("expected destroyed resource")
	}
	if r.Payload() != "still here" {
		t.Fatalf("payload changed on destruction: %q", r.Payload())
	}
}

func TestInstanceIDsAreDistinct(t *testing.T) {
	testlog.Start(t)
	j := lifecycle.NewJournal()
	a := New("a", j)
	b := New("b", j)
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct ids, both %d", a.ID())
	}
	if b.ID() < a.ID() {
		t.Fatalf("expected monotonic ids: a=%d b=%d", a.ID(), b.ID())
	}
}
