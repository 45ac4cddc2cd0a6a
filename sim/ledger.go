package sim

import "time"

// Action classifies a ledger entry.
type Action string

const (
	ActionBuy        Action = "BUY"   // position opened
	ActionTakeProfit Action = "TP"    // closed at take-profit
	ActionStopLoss   Action = "SL"    // closed at stop-loss
	ActionClose      Action = "CLOSE" // forced close at series end
)

// Closes reports whether the action realizes a position.
func (a Action) Closes() bool {
	return a != ActionBuy
}

// LedgerEntry is an immutable record of one completed action. Profit is
// realized P&L net of commission and is zero for BUY entries. Entries are
// append-only and never mutated after creation.
type LedgerEntry struct {
	Time       time.Time
	Action     Action
	Price      float64 // fill price after slippage
	Profit     float64
	Commission float64
	Amount     float64 // capital committed to the position
}

// Position is an open trade. The engine's per-symbol position list is the
// sole owner; reentry is allowed, so several positions may be open for
// one symbol at once.
type Position struct {
	Symbol     string
	EntryTime  time.Time
	EntryPrice float64 // post-slippage
	Qty        float64
	Amount     float64
}
