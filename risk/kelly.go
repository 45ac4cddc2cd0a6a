package risk

import "math"

// MaxKelly caps the adaptive edge estimate. It matches the position
// sizer's own half-balance cap as a second independent safety bound.
const MaxKelly = 0.5

// KellyFraction converts measured win/loss statistics into a betting
// fraction in [0, MaxKelly]. avgLoss is treated as a magnitude, so
// callers may pass it signed or absolute. A zero average loss means no
// edge estimate is possible and returns 0. Negative edges are floored to
// zero: never bet against your own measured edge.
func KellyFraction(winRate, avgWin, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 0.0
	}
	r := avgWin / math.Abs(avgLoss)
	if r <= 0 {
		return 0.0
	}
	k := winRate - (1.0-winRate)/r
	if k < 0 {
		return 0.0
	}
	if k > MaxKelly {
		return MaxKelly
	}
	return k
}
