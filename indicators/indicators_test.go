package indicators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andleep/Trend-andleep8/market"
)

func TestSMA(t *testing.T) {
	t.Parallel()

	vals := []float64{1, 2, 3, 4, 5}
	got := SMA(vals, 3)
	require.Len(t, got, 5)

	// Pre-warmup entries repeat the input.
	assert.Equal(t, 1.0, got[0])
	assert.Equal(t, 2.0, got[1])

	assert.InDelta(t, 2.0, got[2], 1e-12)
	assert.InDelta(t, 3.0, got[3], 1e-12)
	assert.InDelta(t, 4.0, got[4], 1e-12)
}

func TestEMA_SeededWithSMA(t *testing.T) {
	t.Parallel()

	vals := []float64{2, 4, 6, 8}
	got := EMA(vals, 3)
	require.Len(t, got, 4)

	assert.Equal(t, 2.0, got[0])
	assert.Equal(t, 4.0, got[1])
	// Seed: SMA(2,4,6) = 4. Next: (8-4)*0.5 + 4 = 6.
	assert.InDelta(t, 4.0, got[2], 1e-12)
	assert.InDelta(t, 6.0, got[3], 1e-12)
}

func TestEMA_ConstantSeries(t *testing.T) {
	t.Parallel()

	vals := []float64{5, 5, 5, 5, 5, 5}
	for _, v := range EMA(vals, 3) {
		assert.InDelta(t, 5.0, v, 1e-12)
	}
}

func TestEMA_ShortInput(t *testing.T) {
	t.Parallel()

	vals := []float64{1, 2}
	assert.Equal(t, vals, EMA(vals, 5))
}

func TestRSI_NeutralWarmup(t *testing.T) {
	t.Parallel()

	closes := []float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 23, 24, 25, 26, 27}
	got := RSI(closes, 14)
	require.Len(t, got, len(closes))

	for i := 0; i < 14; i++ {
		assert.Equal(t, RSINeutral, got[i], "index %d", i)
	}
	// Monotonically rising closes have no losses: RSI pegs at 100.
	assert.Equal(t, 100.0, got[14])
	assert.Equal(t, 100.0, got[len(got)-1])
}

func TestRSI_FlatSeries(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 7.0
	}
	for _, v := range RSI(closes, 14) {
		assert.Equal(t, RSINeutral, v)
	}
}

func TestMACDHist_FlatSeries(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100.0
	}
	for _, v := range MACDHist(closes, 12, 26, 9) {
		assert.InDelta(t, 0.0, v, 1e-9)
	}
}

func flatBars(n int, price float64) []market.Bar {
	bars := make([]market.Bar, n)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = market.Bar{
			Time:   base.Add(time.Duration(i) * time.Hour),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 100,
		}
	}
	return bars
}

func TestPrepare_NeutralDefaults(t *testing.T) {
	t.Parallel()

	bars := Prepare(flatBars(3, 50.0))
	require.Len(t, bars, 3)

	for _, b := range bars {
		assert.Equal(t, RSINeutral, b.RSI)
		assert.Equal(t, b.Close, b.EMA50)
		assert.Equal(t, 0.0, b.MACDHist)
		assert.Equal(t, 0.0, b.ADX)
		assert.Equal(t, 0.0, b.CCI)
		assert.Equal(t, 0.0, b.WaveTrend)
	}
}

func TestPrepare_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	bars := flatBars(60, 100.0)
	for i := range bars {
		bars[i].Close = 100.0 + float64(i)
		bars[i].High = bars[i].Close + 1
		bars[i].Low = bars[i].Close - 1
	}
	orig := make([]market.Bar, len(bars))
	copy(orig, bars)

	prepared := Prepare(bars)
	assert.Equal(t, orig, bars)
	assert.NotEqual(t, 0.0, prepared[len(prepared)-1].ADX)
}

func TestPrepare_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Prepare(nil))
}

func TestATR_FlatSeriesZero(t *testing.T) {
	t.Parallel()

	n := 30
	hs := make([]float64, n)
	ls := make([]float64, n)
	cs := make([]float64, n)
	for i := 0; i < n; i++ {
		hs[i], ls[i], cs[i] = 10, 10, 10
	}
	for _, v := range ATR(hs, ls, cs, 14) {
		assert.InDelta(t, 0.0, v, 1e-12)
	}
}
