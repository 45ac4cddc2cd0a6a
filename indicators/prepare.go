package indicators

import "github.com/Andleep/Trend-andleep8/market"

// Default periods for the prepared feature columns.
const (
	EMAPeriod    = 50
	MACDFast     = 12
	MACDSlow     = 26
	MACDSignal   = 9
	ADXPeriod    = 14
	ATRPeriod    = 14
	RSIPeriod    = 14
	CCIPeriod    = 20
	WTChannelLen = 10
	WTAverageLen = 21
	WTSignalLen  = 4
)

// Prepare returns a copy of bars with all derived feature columns filled
// in. The input slice is never mutated, so the same bar series can feed
// concurrent simulation runs.
func Prepare(bars []market.Bar) []market.Bar {
	out := make([]market.Bar, len(bars))
	copy(out, bars)
	if len(out) == 0 {
		return out
	}

	n := len(out)
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	hlc3 := make([]float64, n)
	for i, b := range out {
		highs[i] = b.High
		lows[i] = b.Low
		closes[i] = b.Close
		hlc3[i] = b.HLC3()
	}

	ema := EMA(closes, EMAPeriod)
	macd := MACDHist(closes, MACDFast, MACDSlow, MACDSignal)
	adx := ADX(highs, lows, closes, ADXPeriod)
	atr := ATR(highs, lows, closes, ATRPeriod)
	rsi := RSI(closes, RSIPeriod)
	cci := CCI(highs, lows, closes, CCIPeriod)
	wt := WaveTrend(hlc3, WTChannelLen, WTAverageLen, WTSignalLen)

	for i := range out {
		out[i].EMA50 = ema[i]
		out[i].MACDHist = macd[i]
		out[i].ADX = adx[i]
		out[i].ATR = atr[i]
		out[i].RSI = rsi[i]
		out[i].CCI = cci[i]
		out[i].WaveTrend = wt[i]
	}
	return out
}
