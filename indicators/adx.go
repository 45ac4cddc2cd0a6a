package indicators

import "math"

// ADX returns Wilder's Average Directional Index series (trend strength,
// 0..100) for the given period.
//
// Warmup follows Wilder: period bars seed the smoothed TR/+DM/-DM
// averages, then period DX values seed the ADX itself, so the first real
// value appears at index 2*period. Entries before that hold 0, which the
// engine's trend filter (ADX above a positive floor) naturally rejects.
func ADX(highs, lows, closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	if period <= 0 || len(closes) <= 2*period {
		return out
	}

	p := float64(period)

	var tr14, pdm14, mdm14 float64
	var dxSum float64
	var adx float64
	seeded := false
	dxCount := 0

	for i := 1; i < len(closes); i++ {
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]

		var pdm, mdm float64
		if upMove > downMove && upMove > 0 {
			pdm = upMove
		}
		if downMove > upMove && downMove > 0 {
			mdm = downMove
		}
		tr := trueRange(highs[i], lows[i], closes[i-1])

		if i <= period {
			tr14 += tr
			pdm14 += pdm
			mdm14 += mdm
			if i == period {
				tr14 /= p
				pdm14 /= p
				mdm14 /= p
			}
			continue
		}

		tr14 = (tr14*(p-1) + tr) / p
		pdm14 = (pdm14*(p-1) + pdm) / p
		mdm14 = (mdm14*(p-1) + mdm) / p

		if tr14 == 0 {
			continue
		}
		pdi := 100.0 * pdm14 / tr14
		mdi := 100.0 * mdm14 / tr14
		den := pdi + mdi
		if den == 0 {
			continue
		}
		dx := 100.0 * math.Abs(pdi-mdi) / den

		if !seeded {
			dxSum += dx
			dxCount++
			if dxCount == period {
				adx = dxSum / p
				seeded = true
				out[i] = adx
			}
			continue
		}

		adx = (adx*(p-1) + dx) / p
		out[i] = adx
	}
	return out
}
