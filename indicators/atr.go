package indicators

// ATR returns the Wilder-smoothed Average True Range series for the given
// period. Entries before the warmup (period true ranges) hold 0.
func ATR(highs, lows, closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	if period <= 0 || len(closes) <= period {
		return out
	}

	var sum float64
	for i := 1; i <= period; i++ {
		sum += trueRange(highs[i], lows[i], closes[i-1])
	}
	atr := sum / float64(period)
	out[period] = atr

	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		tr := trueRange(highs[i], lows[i], closes[i-1])
		atr = (atr*(p-1) + tr) / p
		out[i] = atr
	}
	return out
}
