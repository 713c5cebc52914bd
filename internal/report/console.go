// Package report renders a run for people and for logs. Everything here
// sits behind the engine's Reporter interface; the simulation never knows
// which sinks are attached.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/emberfall/rival-realms/internal/civ"
	"github.com/emberfall/rival-realms/internal/engine"
)

// Console writes a plain-text narration of the run. It works against any
// io.Writer, so tests can run it headless into a buffer.
type Console struct {
	w io.Writer

	// StatusEvery prints the per-civilization status block only every
	// N turns (events always print). Zero or one means every turn.
	StatusEvery int
}

// NewConsole returns a console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) BeginRun(meta engine.RunMeta) {
	label := meta.Scenario
	if label == "" {
		label = "simulation"
	}
	fmt.Fprintf(c.w, "=== %s: %d civilizations, seed %d, up to %d turns ===\n",
		label, len(meta.Civs), meta.Seed, meta.MaxTurns)
	for _, snap := range meta.Civs {
		t := snap.Traits
		fmt.Fprintf(c.w, "  %-12s int %.1f  tech_rate %.1f  agg %.1f  coop %.1f\n",
			snap.Name, t.Intelligence, t.TechRate, t.Aggressiveness, t.Cooperation)
	}
}

func (c *Console) Event(e engine.Event) {
	fmt.Fprintf(c.w, "  [%s] %s\n", e.Category, e.Description)
}

func (c *Console) TurnStatus(turn int, civs []civ.Snapshot) {
	if c.StatusEvery > 1 && turn%c.StatusEvery != 0 {
		return
	}
	fmt.Fprintf(c.w, "--- turn %d ---\n", turn)
	for _, snap := range civs {
		fmt.Fprintln(c.w, statusLine(snap))
	}
}

func (c *Console) EndRun(res engine.Result) {
	switch res.Outcome {
	case engine.OutcomeDominance:
		fmt.Fprintf(c.w, "=== turn limit: %s dominates after %d turns ===\n", res.Winner, res.Turns)
	case engine.OutcomeStalemate:
		fmt.Fprintf(c.w, "=== turn limit: no dominant power after %d turns ===\n", res.Turns)
	case engine.OutcomeSoleSurvivor:
		fmt.Fprintf(c.w, "=== %s stands alone after %d turns ===\n", res.Winner, res.Turns)
	case engine.OutcomeExtinction:
		fmt.Fprintf(c.w, "=== all civilizations perished by turn %d ===\n", res.Turns)
	}
	fmt.Fprintf(c.w, "  %d conflicts, %d cooperations\n", res.Conflicts, res.Cooperations)
	for _, snap := range res.Finals {
		fmt.Fprintln(c.w, statusLine(snap))
	}
}

func statusLine(snap civ.Snapshot) string {
	if !snap.Alive {
		return fmt.Sprintf("  %-12s ELIMINATED", snap.Name)
	}
	return fmt.Sprintf("  %-12s pop %s  res %s  tech %.3f  str %s",
		snap.Name,
		humanize.CommafWithDigits(snap.Population, 0),
		humanize.CommafWithDigits(snap.Resources, 0),
		snap.TechLevel,
		humanize.CommafWithDigits(snap.Strength, 0))
}
