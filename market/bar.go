package market

import "time"

// Bar represents one OHLCV sample for a fixed time interval, plus the
// derived feature columns filled in by indicators.Prepare. Bars are
// treated as immutable once prepared and are ordered by Time ascending.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	// Derived features. Zero until indicators.Prepare has run; values
	// before an indicator's warmup hold that indicator's neutral default.
	EMA50     float64 // trend-following moving average
	MACDHist  float64 // momentum histogram
	ADX       float64 // trend strength
	ATR       float64 // volatility estimate
	RSI       float64 // oscillator, neutral 50
	CCI       float64 // commodity channel index
	WaveTrend float64 // cyclical momentum
}

// HLC3 returns the typical price (high+low+close)/3 used by CCI and
// the wave trend oscillator.
func (b Bar) HLC3() float64 {
	return (b.High + b.Low + b.Close) / 3.0
}
