package indicators

import "math"

// CCI returns the Commodity Channel Index series over typical prices for
// the given period. Entries before the warmup hold 0.
func CCI(highs, lows, closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}

	tp := make([]float64, len(closes))
	for i := range tp {
		tp[i] = (highs[i] + lows[i] + closes[i]) / 3.0
	}

	for i := period - 1; i < len(tp); i++ {
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += tp[j]
		}
		mean := sum / float64(period)

		var dev float64
		for j := i - period + 1; j <= i; j++ {
			dev += math.Abs(tp[j] - mean)
		}
		dev /= float64(period)
		if dev == 0 {
			continue
		}
		out[i] = (tp[i] - mean) / (0.015 * dev)
	}
	return out
}
