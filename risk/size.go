// Package risk holds position sizing: a fixed risk fraction blended with
// an adaptive Kelly-style edge estimate, clamped so no single trade can
// commit more than half the account.
package risk

type Inputs struct {
	Balance   float64
	RiskPct   float64 // fixed risk fraction per trade
	Kelly     float64 // adaptive edge fraction, see KellyFraction
	Alpha     float64 // weight on the Kelly term; 0 = fixed risk only
	Price     float64
	MinAmount float64
}

type Result struct {
	Amount float64 // capital committed
	Qty    float64 // Amount / Price
}

// Size computes the capital and quantity for one trade. The blended
// fraction is RiskPct*(1-Alpha) + Kelly*Alpha, and the committed amount
// is clamped to [MinAmount, Balance/2]. When the half-balance cap is
// below MinAmount there is no viable trade and Size returns a zero
// Result; callers treat that as "no trade", not an error. A non-positive
// price yields quantity 0.
func Size(in Inputs) Result {
	frac := in.RiskPct*(1.0-in.Alpha) + in.Kelly*in.Alpha

	cap := in.Balance * 0.5
	if cap < in.MinAmount {
		return Result{}
	}

	amt := in.Balance * frac
	if amt > cap {
		amt = cap
	}
	if amt < in.MinAmount {
		amt = in.MinAmount
	}

	if in.Price <= 0 {
		return Result{Amount: amt, Qty: 0.0}
	}
	return Result{Amount: amt, Qty: amt / in.Price}
}
