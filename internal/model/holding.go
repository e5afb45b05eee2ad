package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type AssetClass string

const (
	AssetClassEquity AssetClass = "equity"
	AssetClassFund   AssetClass = "fund"
)

// Holding is a configured position: quantity of one symbol with its cost basis.
// Immutable for the process lifetime.
type Holding struct {
	Symbol   string          `json:"-"`
	Quantity decimal.Decimal `json:"quantity"`
	AvgPrice decimal.Decimal `json:"avgPrice"`
	Class    AssetClass      `json:"class"`
}

func (h Holding) Validate() error {
	if h.Quantity.IsNegative() {
		return fmt.Errorf("holding %s: negative quantity %s", h.Symbol, h.Quantity)
	}
	if h.AvgPrice.IsNegative() {
		return fmt.Errorf("holding %s: negative avg price %s", h.Symbol, h.AvgPrice)
	}
	if h.Class != AssetClassEquity && h.Class != AssetClassFund {
		return fmt.Errorf("holding %s: unknown asset class %q", h.Symbol, h.Class)
	}
	return nil
}

// Portfolio maps symbol to holding, keys unique, supplied once at startup.
type Portfolio map[string]Holding

func (p Portfolio) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("portfolio is empty")
	}
	for _, h := range p {
		if err := h.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EquitySymbols returns the symbols of all equity holdings, in no particular order.
func (p Portfolio) EquitySymbols() []string {
	symbols := make([]string, 0, len(p))
	for symbol, h := range p {
		if h.Class == AssetClassEquity {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}
