package model

import "github.com/shopspring/decimal"

// Valuation is one symbol's market snapshot for the current tick: the latest
// tradable price (or NAV) and the prior-session reference price. Recomputed
// every polling cycle, never persisted.
type Valuation struct {
	Price    decimal.Decimal
	RefPrice decimal.Decimal
}
