// Package persistence records runs to SQLite for later inspection: the
// run row, each civilization's traits and final state, per-turn
// trajectories, and the event stream. This is run history, not a save
// game; nothing here is ever loaded back into an engine.
package persistence

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/emberfall/rival-realms/internal/civ"
	"github.com/emberfall/rival-realms/internal/engine"
)

// DB wraps a SQLite connection holding run history.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the run-history database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		scenario TEXT NOT NULL,
		seed INTEGER NOT NULL,
		max_turns INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL DEFAULT '',
		outcome TEXT NOT NULL DEFAULT '',
		winner TEXT NOT NULL DEFAULT '',
		turns INTEGER NOT NULL DEFAULT 0,
		conflicts INTEGER NOT NULL DEFAULT 0,
		cooperations INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS civilizations (
		run_id TEXT NOT NULL,
		name TEXT NOT NULL,
		intelligence REAL NOT NULL,
		tech_rate REAL NOT NULL,
		aggressiveness REAL NOT NULL,
		cooperation REAL NOT NULL,
		final_population REAL NOT NULL DEFAULT 0,
		final_resources REAL NOT NULL DEFAULT 0,
		final_tech_level REAL NOT NULL DEFAULT 0,
		alive INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (run_id, name)
	);

	CREATE TABLE IF NOT EXISTS turns (
		run_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		name TEXT NOT NULL,
		population REAL NOT NULL,
		resources REAL NOT NULL,
		tech_level REAL NOT NULL,
		strength REAL NOT NULL,
		alive INTEGER NOT NULL,
		PRIMARY KEY (run_id, turn, name)
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_turns_run ON turns(run_id, turn);
	CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id, turn);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// insertRun writes the run row and one civilizations row per starter.
func (db *DB) insertRun(runID string, meta engine.RunMeta, startedAt time.Time) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (id, scenario, seed, max_turns, started_at) VALUES (?, ?, ?, ?, ?)",
		runID, meta.Scenario, meta.Seed, meta.MaxTurns, startedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, snap := range meta.Civs {
		t := snap.Traits
		_, err := tx.Exec(`INSERT INTO civilizations
			(run_id, name, intelligence, tech_rate, aggressiveness, cooperation)
			VALUES (?, ?, ?, ?, ?, ?)`,
			runID, snap.Name, t.Intelligence, t.TechRate, t.Aggressiveness, t.Cooperation,
		)
		if err != nil {
			return fmt.Errorf("insert civilization %s: %w", snap.Name, err)
		}
	}

	return tx.Commit()
}

// saveTurn writes one turn's statuses and its buffered events atomically.
func (db *DB) saveTurn(runID string, turn int, civs []civ.Snapshot, events []engine.Event) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO turns
		(run_id, turn, name, population, resources, tech_level, strength, alive)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, snap := range civs {
		alive := 0
		if snap.Alive {
			alive = 1
		}
		_, err := stmt.Exec(runID, turn, snap.Name, snap.Population, snap.Resources, snap.TechLevel, snap.Strength, alive)
		if err != nil {
			return fmt.Errorf("insert turn %d for %s: %w", turn, snap.Name, err)
		}
	}

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (run_id, turn, category, description) VALUES (?, ?, ?, ?)",
			runID, e.Turn, e.Category, e.Description,
		)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	return tx.Commit()
}

// finishRun stamps the run row with its result and records each
// civilization's final state.
func (db *DB) finishRun(runID string, res engine.Result, finishedAt time.Time) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE runs
		SET finished_at = ?, outcome = ?, winner = ?, turns = ?, conflicts = ?, cooperations = ?
		WHERE id = ?`,
		finishedAt.Format(time.RFC3339Nano), string(res.Outcome), res.Winner,
		res.Turns, res.Conflicts, res.Cooperations, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	for _, snap := range res.Finals {
		alive := 0
		if snap.Alive {
			alive = 1
		}
		_, err := tx.Exec(`UPDATE civilizations
			SET final_population = ?, final_resources = ?, final_tech_level = ?, alive = ?
			WHERE run_id = ? AND name = ?`,
			snap.Population, snap.Resources, snap.TechLevel, alive, runID, snap.Name,
		)
		if err != nil {
			return fmt.Errorf("finalize civilization %s: %w", snap.Name, err)
		}
	}

	return tx.Commit()
}

// RunSummary is one row of run history.
type RunSummary struct {
	ID           string `db:"id" json:"id"`
	Scenario     string `db:"scenario" json:"scenario"`
	Seed         int64  `db:"seed" json:"seed"`
	MaxTurns     int    `db:"max_turns" json:"max_turns"`
	StartedAt    string `db:"started_at" json:"started_at"`
	FinishedAt   string `db:"finished_at" json:"finished_at"`
	Outcome      string `db:"outcome" json:"outcome"`
	Winner       string `db:"winner" json:"winner"`
	Turns        int    `db:"turns" json:"turns"`
	Conflicts    int    `db:"conflicts" json:"conflicts"`
	Cooperations int    `db:"cooperations" json:"cooperations"`
}

// RecentRuns returns the newest runs first.
func (db *DB) RecentRuns(limit int) ([]RunSummary, error) {
	var runs []RunSummary
	err := db.conn.Select(&runs, `SELECT id, scenario, seed, max_turns, started_at,
		finished_at, outcome, winner, turns, conflicts, cooperations
		FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	return runs, err
}

// TurnPoint is one civilization's state after one turn.
type TurnPoint struct {
	Turn       int     `db:"turn" json:"turn"`
	Name       string  `db:"name" json:"name"`
	Population float64 `db:"population" json:"population"`
	Resources  float64 `db:"resources" json:"resources"`
	TechLevel  float64 `db:"tech_level" json:"tech_level"`
	Strength   float64 `db:"strength" json:"strength"`
	Alive      bool    `db:"alive" json:"alive"`
}

// TurnSeries returns one civilization's trajectory through a run.
func (db *DB) TurnSeries(runID, name string) ([]TurnPoint, error) {
	var points []TurnPoint
	err := db.conn.Select(&points, `SELECT turn, name, population, resources, tech_level, strength, alive
		FROM turns WHERE run_id = ? AND name = ? ORDER BY turn`, runID, name)
	return points, err
}

// RunEvents returns a run's events in emission order.
func (db *DB) RunEvents(runID string) ([]engine.Event, error) {
	var events []engine.Event
	err := db.conn.Select(&events,
		"SELECT turn, category, description FROM events WHERE run_id = ? ORDER BY id",
		runID,
	)
	return events, err
}
