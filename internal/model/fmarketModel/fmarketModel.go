package fmarketModel

import "github.com/shopspring/decimal"

// RawFundListing is the fund listing response: the full set of funds known to
// the provider, not filtered by any requested symbol set.
type RawFundListing struct {
	Data FundListingData `json:"data"`
}

type FundListingData struct {
	Total int       `json:"total"`
	Rows  []FundRow `json:"rows"`
}

type FundRow struct {
	ShortName         string          `json:"shortName"`
	Nav               decimal.Decimal `json:"nav"`
	NavChangePrevious decimal.Decimal `json:"navChangePrevious"`
}
