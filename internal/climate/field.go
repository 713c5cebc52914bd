// Package climate modulates gathering yields over time with smooth
// simplex noise: lean years and fat years instead of a flat harvest.
// Purely temporal; there is no geography in this model.
package climate

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/emberfall/rival-realms/internal/numeric"
)

// civChannelGap separates the noise rows sampled per civilization, so two
// civilizations do not share the exact same weather.
const civChannelGap = 7.3

// Field produces a deterministic per-turn, per-civilization yield factor
// around 1.0. A nil *Field disables modulation.
type Field struct {
	noise     opensimplex.Noise
	amplitude float64 // peak deviation from 1.0, within [0, 1)
	frequency float64 // turns-axis sampling step; smaller is slower drift
}

// New builds a yield field for the given seed. Out-of-range amplitude and
// non-positive frequency fall back to the defaults (0.15, 0.05).
func New(seed int64, amplitude, frequency float64) *Field {
	if amplitude < 0 || amplitude >= 1 {
		amplitude = 0.15
	}
	if frequency <= 0 {
		frequency = 0.05
	}
	return &Field{
		noise:     opensimplex.NewNormalized(seed),
		amplitude: amplitude,
		frequency: frequency,
	}
}

// Factor returns the gather multiplier for a civilization on a turn,
// always inside [1-amplitude, 1+amplitude].
func (f *Field) Factor(turn, civIndex int) float64 {
	if f == nil {
		return 1
	}
	// NewNormalized yields [0, 1]; recenter around zero before scaling.
	n := f.noise.Eval2(float64(turn)*f.frequency, float64(civIndex)*civChannelGap)
	factor := 1 + f.amplitude*(2*n-1)
	return numeric.Clamp(factor, 1-f.amplitude, 1+f.amplitude)
}
