package report

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/emberfall/rival-realms/internal/civ"
	"github.com/emberfall/rival-realms/internal/engine"
)

func sampleSnapshots() []civ.Snapshot {
	return []civ.Snapshot{
		{
			Name:       "Aethel",
			Traits:     civ.Traits{Intelligence: 8, TechRate: 7, Aggressiveness: 3, Cooperation: 8},
			Population: 12345.6,
			Resources:  67890.1,
			TechLevel:  2.345,
			Strength:   44321.9,
			Alive:      true,
		},
		{
			Name:   "Borog",
			Traits: civ.Traits{Intelligence: 5, TechRate: 4, Aggressiveness: 9, Cooperation: 2},
			Alive:  false,
		},
	}
}

func TestConsoleRendersRun(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	snaps := sampleSnapshots()

	c.BeginRun(engine.RunMeta{Scenario: "twin-empires", Seed: 42, MaxTurns: 100, Civs: snaps})
	c.Event(engine.Event{Turn: 1, Category: engine.EventConflict, Description: "Aethel attacks Borog (strength 44322 vs 0)"})
	c.TurnStatus(1, snaps)
	c.EndRun(engine.Result{Outcome: engine.OutcomeSoleSurvivor, Winner: "Aethel", Turns: 1, Conflicts: 1, Finals: snaps})

	out := buf.String()
	for _, want := range []string{
		"twin-empires: 2 civilizations, seed 42, up to 100 turns",
		"[conflict] Aethel attacks Borog",
		"--- turn 1 ---",
		"pop 12,345", // humanized
		"ELIMINATED",
		"Aethel stands alone after 1 turns",
		"1 conflicts, 0 cooperations",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleOutcomeLines(t *testing.T) {
	cases := []struct {
		res  engine.Result
		want string
	}{
		{engine.Result{Outcome: engine.OutcomeDominance, Winner: "Aethel", Turns: 100}, "Aethel dominates after 100 turns"},
		{engine.Result{Outcome: engine.OutcomeStalemate, Turns: 100}, "no dominant power after 100 turns"},
		{engine.Result{Outcome: engine.OutcomeExtinction, Turns: 23}, "all civilizations perished by turn 23"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		NewConsole(&buf).EndRun(tc.res)
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("outcome %q output missing %q:\n%s", tc.res.Outcome, tc.want, buf.String())
		}
	}
}

func TestConsoleStatusEvery(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.StatusEvery = 10
	snaps := sampleSnapshots()

	for turn := 1; turn <= 20; turn++ {
		c.TurnStatus(turn, snaps)
	}

	out := buf.String()
	if strings.Contains(out, "--- turn 1 ---") || strings.Contains(out, "--- turn 19 ---") {
		t.Errorf("off-interval turns printed:\n%s", out)
	}
	for _, want := range []string{"--- turn 10 ---", "--- turn 20 ---"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLog(slog.New(slog.NewTextHandler(&buf, nil)))
	snaps := sampleSnapshots()

	l.BeginRun(engine.RunMeta{Scenario: "twin-empires", Seed: 7, MaxTurns: 5, Civs: snaps})
	l.Event(engine.Event{Turn: 2, Category: engine.EventCooperation, Description: "trade"})
	l.TurnStatus(2, snaps[:1])
	l.EndRun(engine.Result{Outcome: engine.OutcomeStalemate, Turns: 5})

	out := buf.String()
	for _, want := range []string{
		"run started", "scenario=twin-empires", "seed=7",
		"category=cooperation",
		"turn complete", "name=Aethel", "population=12345",
		"run finished", "outcome=stalemate",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

// countingReporter tallies calls for fan-out tests.
type countingReporter struct {
	begins, events, statuses, ends int
}

func (c *countingReporter) BeginRun(engine.RunMeta)        { c.begins++ }
func (c *countingReporter) Event(engine.Event)             { c.events++ }
func (c *countingReporter) TurnStatus(int, []civ.Snapshot) { c.statuses++ }
func (c *countingReporter) EndRun(engine.Result)           { c.ends++ }

func TestMultiFansOut(t *testing.T) {
	a, b := &countingReporter{}, &countingReporter{}
	m := Multi{a, b}

	m.BeginRun(engine.RunMeta{})
	m.Event(engine.Event{})
	m.Event(engine.Event{})
	m.TurnStatus(1, nil)
	m.EndRun(engine.Result{})

	for i, r := range []*countingReporter{a, b} {
		if r.begins != 1 || r.events != 2 || r.statuses != 1 || r.ends != 1 {
			t.Errorf("reporter %d counts = %+v, want 1/2/1/1", i, *r)
		}
	}
}
