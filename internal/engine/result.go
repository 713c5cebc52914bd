// Run results and metadata.
package engine

import "github.com/emberfall/rival-realms/internal/civ"

// Outcome classifies how a run ended.
type Outcome string

const (
	// OutcomeDominance: the turn limit passed with one survivor strictly
	// stronger than every other.
	OutcomeDominance Outcome = "dominance"
	// OutcomeStalemate: the turn limit passed with no strict strongest.
	OutcomeStalemate Outcome = "stalemate"
	// OutcomeSoleSurvivor: exactly one civilization outlived the rest.
	OutcomeSoleSurvivor Outcome = "sole_survivor"
	// OutcomeExtinction: nobody made it.
	OutcomeExtinction Outcome = "extinction"
)

// Result summarizes a finished run.
type Result struct {
	Outcome      Outcome        `json:"outcome"`
	Winner       string         `json:"winner,omitempty"`
	Turns        int            `json:"turns"`
	Conflicts    int            `json:"conflicts"`
	Cooperations int            `json:"cooperations"`
	Finals       []civ.Snapshot `json:"finals"`
}

// RunMeta describes a run before the first turn.
type RunMeta struct {
	Scenario string         `json:"scenario"`
	Seed     int64          `json:"seed"`
	MaxTurns int            `json:"max_turns"`
	Civs     []civ.Snapshot `json:"civilizations"`
}
