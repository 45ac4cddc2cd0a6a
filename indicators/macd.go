package indicators

// MACDHist returns the MACD histogram series (MACD line minus its signal
// line) for the given fast/slow/signal periods. Entries before the slow
// EMA and signal warmup hold 0.
func MACDHist(closes []float64, fast, slow, signal int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) < slow || fast <= 0 || slow <= fast || signal <= 0 {
		return out
	}

	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)

	// MACD line is meaningful once the slow EMA is seeded.
	macd := make([]float64, 0, len(closes)-slow+1)
	for i := slow - 1; i < len(closes); i++ {
		macd = append(macd, emaFast[i]-emaSlow[i])
	}
	if len(macd) < signal {
		return out
	}

	sig := EMA(macd, signal)
	for i := signal - 1; i < len(macd); i++ {
		out[i+slow-1] = macd[i] - sig[i]
	}
	return out
}
