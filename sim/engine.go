package sim

import (
	"time"

	"github.com/Andleep/Trend-andleep8/market"
	"github.com/Andleep/Trend-andleep8/risk"
	"github.com/Andleep/Trend-andleep8/signal"
)

// WarmupBars is the number of leading bars skipped for signal generation.
// They still produce equity samples at the then-current balance.
const WarmupBars = 5

// minKellySample is the number of closed TP/SL trades required before the
// adaptive edge estimate is trusted; below it the sizer relies on the
// fixed risk fraction alone.
const minKellySample = 5

// Engine is the bar-by-bar simulation state machine. All mutable state
// (balance, open positions, ledger, equity curve) lives on the Engine, so
// each run owns its state and independent runs can execute concurrently
// over the same read-only bar slice.
type Engine struct {
	params Params

	balance   float64
	positions map[string][]Position
	ledger    []LedgerEntry
	equity    []float64

	// Realized TP/SL profits, feeding the Kelly edge estimate.
	wins   []float64
	losses []float64
}

// Result is the raw output of one run. The stats package reduces it to
// scalar performance numbers.
type Result struct {
	FinalBalance float64
	Ledger       []LedgerEntry
	Equity       []float64
}

// New returns a fresh engine for one simulation run.
func New(params Params) *Engine {
	return &Engine{
		params:    params,
		balance:   params.InitialBalance,
		positions: make(map[string][]Position),
	}
}

// Run steps through the prepared bar series in order, opening and closing
// positions per the entry/exit rules, and returns the full ledger and
// equity curve. Bars must be time-ascending with feature columns filled
// (see indicators.Prepare). An empty or too-short series yields zero
// trades and a final balance equal to the initial balance.
func (e *Engine) Run(bars []market.Bar, symbol string) Result {
	for i := range bars {
		bar := bars[i]

		// 1) Exits first: TP before SL, newest position first.
		e.sweepExits(bar, symbol)

		// 2) Warm-up bars produce no signals.
		if i < WarmupBars {
			e.equity = append(e.equity, e.balance)
			continue
		}

		// 3) Entry decision on this bar's features vs the lookback window.
		start := i - e.params.Lookback
		if start < 0 {
			start = 0
		}
		hist := make([]signal.Vector, 0, i-start)
		for _, h := range bars[start:i] {
			hist = append(hist, signal.FromBar(h))
		}
		score := signal.Score(signal.FromBar(bar), hist)

		if score > e.params.ScoreThreshold && e.trendUp(bar) {
			e.tryOpen(bar, symbol)
		}

		// 4) Exactly one equity sample per bar: balance plus the
		// mark-to-market value of everything still open.
		e.equity = append(e.equity, e.balance+e.unrealized(bar.Close, symbol))
	}

	e.closeAll(bars, symbol)

	return Result{
		FinalBalance: e.balance,
		Ledger:       e.ledger,
		Equity:       e.equity,
	}
}

// trendUp is the entry trend filter: price above the long moving average,
// positive momentum histogram, trend strength above the floor.
func (e *Engine) trendUp(bar market.Bar) bool {
	return bar.Close > bar.EMA50 &&
		bar.MACDHist > 0 &&
		bar.ADX > e.params.ADXThreshold
}

// sweepExits checks every open position on this bar, most recently opened
// first (LIFO). For each position TP is checked before SL; a wide-range
// bar that could satisfy both fills at the take-profit. This tie-break
// and the LIFO ordering are part of the model contract: changing either
// silently changes backtest results.
func (e *Engine) sweepExits(bar market.Bar, symbol string) {
	open := e.positions[symbol]
	for i := len(open) - 1; i >= 0; i-- {
		pos := open[i]
		tpPrice := pos.EntryPrice * (1.0 + e.params.TakeProfitPct)
		slPrice := pos.EntryPrice * (1.0 - e.params.StopLossPct)

		switch {
		case bar.High >= tpPrice:
			e.closePosition(pos, bar.Time, tpPrice*(1.0-e.params.Slippage), ActionTakeProfit)
		case bar.Low <= slPrice:
			e.closePosition(pos, bar.Time, slPrice*(1.0+e.params.Slippage), ActionStopLoss)
		default:
			continue
		}
		open = append(open[:i], open[i+1:]...)
	}

	if len(open) == 0 {
		delete(e.positions, symbol)
	} else {
		e.positions[symbol] = open
	}
}

// tryOpen sizes and opens a position at this bar's close. A sizing
// failure (amount below floor or above balance) silently skips the trade;
// that is "no signal actionable this bar", not an error.
func (e *Engine) tryOpen(bar market.Bar, symbol string) {
	kelly := 0.0
	if len(e.wins)+len(e.losses) > minKellySample {
		kelly = risk.KellyFraction(e.winRate(), mean(e.wins), mean(e.losses))
	}

	sz := risk.Size(risk.Inputs{
		Balance:   e.balance,
		RiskPct:   e.params.RiskPerTrade,
		Kelly:     kelly,
		Alpha:     e.params.KellyWeight,
		Price:     bar.Close,
		MinAmount: e.params.MinAmount,
	})
	if sz.Amount <= 0 || sz.Qty <= 0 || sz.Amount > e.balance {
		return
	}

	e.balance -= sz.Amount
	pos := Position{
		Symbol:     symbol,
		EntryTime:  bar.Time,
		EntryPrice: bar.Close * (1.0 + e.params.Slippage),
		Qty:        sz.Qty,
		Amount:     sz.Amount,
	}
	e.positions[symbol] = append(e.positions[symbol], pos)
	e.ledger = append(e.ledger, LedgerEntry{
		Time:   bar.Time,
		Action: ActionBuy,
		Price:  pos.EntryPrice,
		Amount: sz.Amount,
	})
}

// closePosition realizes a position at the given fill price: the
// committed amount returns to balance in full plus profit net of
// commission, so capital is conserved except for explicit fee and
// slippage leakage.
func (e *Engine) closePosition(pos Position, t time.Time, fill float64, action Action) {
	gross := (fill - pos.EntryPrice) * pos.Qty
	fee := pos.Amount * e.params.Commission
	profit := gross - fee

	e.balance += pos.Amount + profit
	e.ledger = append(e.ledger, LedgerEntry{
		Time:       t,
		Action:     action,
		Price:      fill,
		Profit:     profit,
		Commission: fee,
		Amount:     pos.Amount,
	})

	switch action {
	case ActionTakeProfit:
		e.wins = append(e.wins, profit)
	case ActionStopLoss:
		e.losses = append(e.losses, profit)
	}
}

// closeAll force-closes residual positions at the last close so the
// ledger always reconciles to a fully realized final balance.
func (e *Engine) closeAll(bars []market.Bar, symbol string) {
	open := e.positions[symbol]
	if len(open) == 0 || len(bars) == 0 {
		return
	}
	last := bars[len(bars)-1]
	fill := last.Close * (1.0 - e.params.Slippage)
	for i := len(open) - 1; i >= 0; i-- {
		e.closePosition(open[i], last.Time, fill, ActionClose)
	}
	delete(e.positions, symbol)
}

// unrealized values open positions at the current close: committed
// capital plus mark-to-market P&L.
func (e *Engine) unrealized(close float64, symbol string) float64 {
	var u float64
	for _, p := range e.positions[symbol] {
		u += (close-p.EntryPrice)*p.Qty + p.Amount
	}
	return u
}

// winRate is the in-run estimate feeding the Kelly fraction: the share of
// take-profit closes that were actually profitable after commission.
// With no TP closes yet it assumes a coin flip.
func (e *Engine) winRate() float64 {
	if len(e.wins) == 0 {
		return 0.5
	}
	n := 0
	for _, w := range e.wins {
		if w > 0 {
			n++
		}
	}
	return float64(n) / float64(len(e.wins))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
