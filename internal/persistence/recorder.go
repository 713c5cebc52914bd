// Run recorder behind the engine's Reporter seam.
package persistence

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/emberfall/rival-realms/internal/civ"
	"github.com/emberfall/rival-realms/internal/engine"
)

// Recorder streams one run into the database. Reporter methods carry no
// error returns; write failures are logged and the recorder keeps going,
// so a bad disk never kills a simulation in flight.
type Recorder struct {
	db      *DB
	runID   string
	pending []engine.Event // events waiting for their turn's flush
}

// NewRecorder prepares a recorder with a fresh run ID. One recorder
// serves exactly one run.
func NewRecorder(db *DB) *Recorder {
	return &Recorder{db: db, runID: uuid.NewString()}
}

// RunID identifies this run in the database.
func (r *Recorder) RunID() string {
	return r.runID
}

func (r *Recorder) BeginRun(meta engine.RunMeta) {
	if err := r.db.insertRun(r.runID, meta, time.Now().UTC()); err != nil {
		slog.Error("run insert failed", "run_id", r.runID, "error", err)
	}
}

func (r *Recorder) Event(e engine.Event) {
	r.pending = append(r.pending, e)
}

func (r *Recorder) TurnStatus(turn int, civs []civ.Snapshot) {
	if err := r.db.saveTurn(r.runID, turn, civs, r.pending); err != nil {
		slog.Error("turn save failed", "run_id", r.runID, "turn", turn, "error", err)
	}
	r.pending = r.pending[:0]
}

func (r *Recorder) EndRun(res engine.Result) {
	if err := r.db.finishRun(r.runID, res, time.Now().UTC()); err != nil {
		slog.Error("run finish failed", "run_id", r.runID, "error", err)
	}
}
