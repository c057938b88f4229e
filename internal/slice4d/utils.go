package slice4d

import (
	"math"

	"golang.org/x/exp/constraints"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clamp[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func lerp[T constraints.Float](a, b, t T) T { return a + (b-a)*t }
