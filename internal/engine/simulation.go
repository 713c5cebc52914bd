// Package engine drives a run: each turn every living civilization works
// through its internal phase, then all living pairs resolve an
// interaction, then status goes to the reporters and termination is
// checked. One goroutine, one shared PRNG; a seed and a scenario pin
// down the whole run.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/emberfall/rival-realms/internal/civ"
)

// Config wires up a simulation.
type Config struct {
	Scenario string              // label carried into reports, may be empty
	Civs     []*civ.Civilization // at least two, unique names, one shared tuning
	MaxTurns int                 // hard stop, at least 1
	Seed     int64               // informational, recorded in RunMeta; Rng governs the rolls
	Rng      *rand.Rand          // required
	Reporter Reporter            // nil means no reporting
	Yield    YieldModifier       // nil means constant yield 1.0
}

// Simulation is one run in progress.
type Simulation struct {
	scenario string
	civs     []*civ.Civilization
	params   civ.Params
	maxTurns int
	seed     int64
	rng      *rand.Rand
	reporter Reporter
	yield    YieldModifier

	turn         int
	conflicts    int
	cooperations int
	done         bool
}

// New validates the configuration and prepares a run. Scenario problems
// (turn count, civilization count, duplicate names, mixed tuning) come
// back as *civ.ValidationError. Interaction tuning is taken from the
// civilizations themselves, which must all share the same Params.
func New(cfg Config) (*Simulation, error) {
	if cfg.MaxTurns < 1 {
		return nil, &civ.ValidationError{Field: "max_turns", Reason: fmt.Sprintf("must be at least 1, got %d", cfg.MaxTurns)}
	}
	if len(cfg.Civs) < 2 {
		return nil, &civ.ValidationError{Field: "civilizations", Reason: fmt.Sprintf("need at least 2, got %d", len(cfg.Civs))}
	}
	seen := make(map[string]bool, len(cfg.Civs))
	for _, c := range cfg.Civs {
		if c == nil {
			return nil, &civ.ValidationError{Field: "civilizations", Reason: "must not contain nil entries"}
		}
		if seen[c.Name] {
			return nil, &civ.ValidationError{Field: "civilizations", Reason: fmt.Sprintf("duplicate name %q", c.Name)}
		}
		seen[c.Name] = true
	}
	params := cfg.Civs[0].Params()
	for _, c := range cfg.Civs[1:] {
		if c.Params() != params {
			return nil, &civ.ValidationError{Field: "params", Reason: fmt.Sprintf("%s was built with different tuning", c.Name)}
		}
	}
	if cfg.Rng == nil {
		return nil, fmt.Errorf("rng is required")
	}
	rep := cfg.Reporter
	if rep == nil {
		rep = noopReporter{}
	}
	return &Simulation{
		scenario: cfg.Scenario,
		civs:     cfg.Civs,
		params:   params,
		maxTurns: cfg.MaxTurns,
		seed:     cfg.Seed,
		rng:      cfg.Rng,
		reporter: rep,
		yield:    cfg.Yield,
	}, nil
}

// Run steps the simulation to completion and returns the result.
func (s *Simulation) Run() Result {
	for !s.Step() {
	}
	return s.Result()
}

// Step advances one turn: internal phases in declaration order, the
// interaction phase over frozen snapshots, status reporting, then the
// termination check. Returns true once the run is over; further calls
// are no-ops.
func (s *Simulation) Step() bool {
	if s.done {
		return true
	}
	if s.turn == 0 {
		s.reporter.BeginRun(s.meta())
	}
	s.turn++

	s.internalPhase()
	s.interactionPhase()

	s.reporter.TurnStatus(s.turn, s.snapshots())

	if s.aliveCount() < 2 || s.turn >= s.maxTurns {
		s.done = true
		s.reporter.EndRun(s.Result())
	}
	return s.done
}

// Turn returns the number of completed turns.
func (s *Simulation) Turn() int {
	return s.turn
}

// internalPhase runs gather, consume, grow, develop for every living
// civilization. A death here ends that civilization's turn on the spot.
func (s *Simulation) internalPhase() {
	for i, c := range s.civs {
		if !c.Alive {
			continue
		}

		yield := 1.0
		if s.yield != nil {
			yield = s.yield.Factor(s.turn, i)
		}
		c.Gather(yield)

		food := c.Consume()
		if food.Starved {
			s.emit(EventStarvation, "%s suffers a resource shortage, losing %.0f population", c.Name, food.PopulationLost)
		}
		if food.Died {
			s.emit(EventElimination, "%s has collapsed from starvation", c.Name)
			continue
		}

		c.Grow()
		c.Develop()
	}
}

// emit hands an event for the current turn to the reporter.
func (s *Simulation) emit(category, format string, args ...any) {
	s.reporter.Event(Event{
		Turn:        s.turn,
		Category:    category,
		Description: fmt.Sprintf(format, args...),
	})
}

func (s *Simulation) snapshots() []civ.Snapshot {
	snaps := make([]civ.Snapshot, len(s.civs))
	for i, c := range s.civs {
		snaps[i] = c.Snapshot()
	}
	return snaps
}

func (s *Simulation) aliveCount() int {
	alive := 0
	for _, c := range s.civs {
		if c.Alive {
			alive++
		}
	}
	return alive
}

func (s *Simulation) meta() RunMeta {
	return RunMeta{
		Scenario: s.scenario,
		Seed:     s.seed,
		MaxTurns: s.maxTurns,
		Civs:     s.snapshots(),
	}
}

// Result classifies the run as it stands: extinction or a sole survivor
// once fewer than two civilizations remain, otherwise dominance by the
// strictly strongest or a stalemate.
func (s *Simulation) Result() Result {
	finals := s.snapshots()
	res := Result{
		Outcome:      OutcomeStalemate,
		Turns:        s.turn,
		Conflicts:    s.conflicts,
		Cooperations: s.cooperations,
		Finals:       finals,
	}

	var alive []civ.Snapshot
	for _, snap := range finals {
		if snap.Alive {
			alive = append(alive, snap)
		}
	}

	switch len(alive) {
	case 0:
		res.Outcome = OutcomeExtinction
	case 1:
		res.Outcome = OutcomeSoleSurvivor
		res.Winner = alive[0].Name
	default:
		best, second := alive[0], 0.0
		for _, snap := range alive[1:] {
			if snap.Strength > best.Strength {
				second = best.Strength
				best = snap
			} else if snap.Strength > second {
				second = snap.Strength
			}
		}
		if best.Strength > second {
			res.Outcome = OutcomeDominance
			res.Winner = best.Name
		}
	}
	return res
}
