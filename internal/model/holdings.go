package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadPortfolio reads the holdings file (symbol -> holding JSON object) and
// validates it. Any error here is a startup configuration error and fatal to
// the caller.
func LoadPortfolio(path string) (Portfolio, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holdings file: %w", err)
	}

	portfolio := Portfolio{}
	if err := json.Unmarshal(raw, &portfolio); err != nil {
		return nil, fmt.Errorf("parse holdings file %s: %w", path, err)
	}

	for symbol, h := range portfolio {
		h.Symbol = symbol
		portfolio[symbol] = h
	}

	if err := portfolio.Validate(); err != nil {
		return nil, fmt.Errorf("invalid holdings file %s: %w", path, err)
	}

	return portfolio, nil
}
