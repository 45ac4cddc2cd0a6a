// Package signal scores how similar the current bar looks to prior bars
// using a log-dampened distance over a fixed feature tuple. The median of
// the per-history distances keeps a few anomalous bars from skewing the
// score, without needing a neighbor count or distance threshold.
package signal

import (
	"math"
	"sort"

	"github.com/Andleep/Trend-andleep8/market"
)

// Arity is the fixed number of features compared per bar.
const Arity = 5

// Vector is the ordered feature tuple for one bar: RSI, wave trend, CCI,
// ADX, MACD histogram. The fixed arity is part of the contract between
// the feature preparer and the scorer.
type Vector [Arity]float64

// FromBar extracts the feature tuple from a prepared bar.
func FromBar(b market.Bar) Vector {
	return Vector{b.RSI, b.WaveTrend, b.CCI, b.ADX, b.MACDHist}
}

// Distance is the log-dampened L1 distance between two vectors:
// sum over dimensions of log(1 + |a_i - b_i|). The log compresses the
// influence of large outlier feature swings.
func Distance(a, b Vector) float64 {
	var sum float64
	for i := range a {
		sum += math.Log1p(math.Abs(a[i] - b[i]))
	}
	return sum
}

// Score returns a confidence in (0, 1] that the current vector resembles
// the history window: 1 / (1 + median distance). An empty history yields
// exactly 0 (cold start, no signal possible). Deterministic.
func Score(cur Vector, hist []Vector) float64 {
	if len(hist) == 0 {
		return 0.0
	}
	d := make([]float64, len(hist))
	for i, h := range hist {
		d[i] = Distance(cur, h)
	}
	return 1.0 / (1.0 + median(d))
}

// median mutates xs.
func median(xs []float64) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2.0
}
