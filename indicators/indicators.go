// Package indicators computes the technical feature columns consumed by the
// simulation engine. All functions are deterministic and operate on closed
// bars only; values before an indicator's warmup are filled with that
// indicator's neutral default (RSI 50, EMA = close, 0 for everything else)
// so a run never aborts on insufficient history.
package indicators

import "math"

// trueRange computes the True Range given current high/low and the
// previous close.
func trueRange(high, low, prevClose float64) float64 {
	hl := high - low
	hc := math.Abs(high - prevClose)
	lc := math.Abs(low - prevClose)
	return math.Max(hl, math.Max(hc, lc))
}
