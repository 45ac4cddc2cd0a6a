package indicators

// SMA returns the simple moving average series for the given period.
// Entries before the warmup (period-1 bars) repeat the input value.
func SMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if period <= 0 {
		copy(out, values)
		return out
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = v
		}
	}
	return out
}

// EMA returns the exponential moving average series for the given period.
// The first EMA value is seeded with the SMA of the first period closes;
// entries before that repeat the input value (neutral: price sits on its
// own average).
func EMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if period <= 0 || len(values) < period {
		copy(out, values)
		return out
	}

	multiplier := 2.0 / float64(period+1)

	sma := 0.0
	for i := 0; i < period; i++ {
		sma += values[i]
		out[i] = values[i]
	}
	ema := sma / float64(period)
	out[period-1] = ema

	for i := period; i < len(values); i++ {
		ema = (values[i]-ema)*multiplier + ema
		out[i] = ema
	}
	return out
}
