package vciModel

import "github.com/shopspring/decimal"

// RawPriceBoard is the price board response shape: one row per requested
// symbol, each row carrying a listing group (static data, reference price)
// and a match group (intraday trade data).
type RawPriceBoard struct {
	Data []PriceBoardRow `json:"data"`
}

type PriceBoardRow struct {
	Listing Listing `json:"listing"`
	Match   Match   `json:"match"`
}

type Listing struct {
	Symbol   string          `json:"symbol"`
	RefPrice decimal.Decimal `json:"refPrice"`
}

type Match struct {
	MatchPrice decimal.Decimal `json:"matchPrice"`
	OpenPrice  decimal.Decimal `json:"openPrice"`
}
