// Reporting seams. The simulation only pushes; rendering, logging, and
// recording live behind these interfaces in internal/report and
// internal/persistence.
package engine

import "github.com/emberfall/rival-realms/internal/civ"

// Reporter receives the narrative of a run in order: one BeginRun, then
// per turn any number of Events followed by one TurnStatus, then one
// EndRun. Implementations must not mutate the snapshots.
type Reporter interface {
	BeginRun(meta RunMeta)
	Event(e Event)
	TurnStatus(turn int, civs []civ.Snapshot)
	EndRun(res Result)
}

// YieldModifier scales a civilization's gather yield on a given turn.
// internal/climate provides the noise-driven implementation.
type YieldModifier interface {
	Factor(turn, civIndex int) float64
}

type noopReporter struct{}

func (noopReporter) BeginRun(RunMeta)               {}
func (noopReporter) Event(Event)                    {}
func (noopReporter) TurnStatus(int, []civ.Snapshot) {}
func (noopReporter) EndRun(Result)                  {}
