// Fan-out reporter.
package report

import (
	"github.com/emberfall/rival-realms/internal/civ"
	"github.com/emberfall/rival-realms/internal/engine"
)

// Multi forwards every call to each reporter in order.
type Multi []engine.Reporter

func (m Multi) BeginRun(meta engine.RunMeta) {
	for _, r := range m {
		r.BeginRun(meta)
	}
}

func (m Multi) Event(e engine.Event) {
	for _, r := range m {
		r.Event(e)
	}
}

func (m Multi) TurnStatus(turn int, civs []civ.Snapshot) {
	for _, r := range m {
		r.TurnStatus(turn, civs)
	}
}

func (m Multi) EndRun(res engine.Result) {
	for _, r := range m {
		r.EndRun(res)
	}
}
