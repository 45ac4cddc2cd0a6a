package indicators

import "math"

// WaveTrend returns the wave trend oscillator series over typical prices:
// the channel index smoothed by a 21-period EMA (wt1) minus its 4-period
// SMA signal (wt2). Entries before the warmup hold 0.
func WaveTrend(hlc3 []float64, channelLen, avgLen, signalLen int) []float64 {
	out := make([]float64, len(hlc3))
	if len(hlc3) < channelLen || channelLen <= 0 || avgLen <= 0 || signalLen <= 0 {
		return out
	}

	esa := EMA(hlc3, channelLen)

	dev := make([]float64, len(hlc3))
	for i := range hlc3 {
		dev[i] = math.Abs(hlc3[i] - esa[i])
	}
	de := EMA(dev, channelLen)

	ci := make([]float64, len(hlc3))
	for i := range hlc3 {
		if de[i] == 0 {
			continue
		}
		ci[i] = (hlc3[i] - esa[i]) / (0.015 * de[i])
	}

	wt1 := EMA(ci, avgLen)
	wt2 := SMA(wt1, signalLen)

	warm := channelLen + avgLen + signalLen - 2
	for i := warm; i < len(hlc3); i++ {
		out[i] = wt1[i] - wt2[i]
	}
	return out
}
