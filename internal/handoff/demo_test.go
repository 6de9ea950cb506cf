package handoff

import (
	"errors"
	"reflect"
	"testing"

	"handoff/internal/lifecycle"
	"handoff/internal/testutil/testlog"
)

func TestParseScenario(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		raw  string
		want Scenario
	}{
		{"honest", ScenarioHonest},
		{" Honest ", ScenarioHonest},
		{"claiming", ScenarioClaiming},
		{"CLAIMING", ScenarioClaiming},
	}
	for _, c := range cases {
		got, err := ParseScenario(c.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("parse %q: got=%q want=%q", c.raw, got, c.want)
		}
	}

	if _, err := ParseScenario("greedy"); !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, got %v", err)
	}
}

func TestBackToBackRunsShareOneRelay(t *testing.T) {
	testlog.Start(t)
	demo := NewDemo("Hello, World!")

	if err := demo.Run(ScenarioHonest); err != nil {
		t.Fatalf("honest run: %v", err)
	}
	if err := demo.Run(ScenarioClaiming); err != nil {
		t.Fatalf("claiming run: %v", err)
	}

	want := []lifecycle.EventKind{
		// first run: resource comes back and reaches the sink
		lifecycle.EventConstructed,
		lifecycle.EventInspected,
		lifecycle.EventOwnerPresent,
		lifecycle.EventConsumed,
		lifecycle.EventDestroyed,
		// second run: relay keeps it, sink skipped
		lifecycle.EventConstructed,
		lifecycle.EventInspected,
		lifecycle.EventClaimed,
		lifecycle.EventDestroyed,
		lifecycle.EventOwnerAbsent,
	}
	if !reflect.DeepEqual(demo.Journal().Kinds(), want) {
		t.Fatalf("unexpected combined transcript: %v", demo.Journal().Kinds())
	}

	events := demo.Journal().Events()
	if events[0].ResourceID == events[5].ResourceID {
		t.Fatalf("each run must construct a fresh resource")
	}
}

func TestRunRejectsUnknownScenario(t *testing.T) {
	testlog.Start(t)
	demo := NewDemo("x")
	if err := demo.Run(Scenario("greedy")); !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, got %v", err)
	}
	if demo.Journal().Len() != 0 {
		t.Fatalf("rejected run must not touch the journal")
	}
}
