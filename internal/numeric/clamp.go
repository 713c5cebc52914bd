// Package numeric holds small generic helpers shared by the model.
package numeric

import "golang.org/x/exp/constraints"

// Clamp pins v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
