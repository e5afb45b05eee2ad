package model

import "github.com/shopspring/decimal"

// ClassSummary is one aggregation bucket: running sums over all holdings of a
// class that had a valuation this tick, plus percentages derived once at the
// end of aggregation.
type ClassSummary struct {
	Cost            decimal.Decimal
	Value           decimal.Decimal
	Pnl             decimal.Decimal
	DailyPnl        decimal.Decimal
	PnlPercent      decimal.Decimal
	DailyPnlPercent decimal.Decimal
}

// PortfolioSummary is the per-tick three-tier result. Total is accumulated
// alongside the class buckets, not derived from them afterwards.
type PortfolioSummary struct {
	Equity ClassSummary
	Fund   ClassSummary
	Total  ClassSummary
}
