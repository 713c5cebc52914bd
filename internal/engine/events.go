// Event stream of a run.
package engine

// Event categories.
const (
	EventStarvation  = "starvation"
	EventConflict    = "conflict"
	EventCooperation = "cooperation"
	EventElimination = "elimination"
)

// Event is a notable occurrence during a turn.
type Event struct {
	Turn        int    `json:"turn"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
