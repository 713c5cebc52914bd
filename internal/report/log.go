// Structured logging reporter.
package report

import (
	"fmt"
	"log/slog"

	"github.com/emberfall/rival-realms/internal/civ"
	"github.com/emberfall/rival-realms/internal/engine"
)

// Log mirrors the run into slog, one record per turn per civilization.
type Log struct {
	logger *slog.Logger
}

// NewLog returns a slog-backed reporter. A nil logger means slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) BeginRun(meta engine.RunMeta) {
	l.logger.Info("run started",
		"scenario", meta.Scenario,
		"seed", meta.Seed,
		"max_turns", meta.MaxTurns,
		"civilizations", len(meta.Civs),
	)
}

func (l *Log) Event(e engine.Event) {
	l.logger.Info("event", "turn", e.Turn, "category", e.Category, "description", e.Description)
}

func (l *Log) TurnStatus(turn int, civs []civ.Snapshot) {
	for _, snap := range civs {
		l.logger.Info("turn complete",
			"turn", turn,
			"name", snap.Name,
			"population", int64(snap.Population),
			"resources", int64(snap.Resources),
			"tech", fmt.Sprintf("%.3f", snap.TechLevel),
			"alive", snap.Alive,
		)
	}
}

func (l *Log) EndRun(res engine.Result) {
	l.logger.Info("run finished",
		"outcome", string(res.Outcome),
		"winner", res.Winner,
		"turns", res.Turns,
		"conflicts", res.Conflicts,
		"cooperations", res.Cooperations,
	)
}
