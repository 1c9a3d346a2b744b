package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quote is one successfully parsed price observation.
type Quote struct {
	Pair     Pair
	Exchange string
	Price    decimal.Decimal
}

// ParsePrice parses a string-encoded price as returned by ticker endpoints.
// Only positive values are accepted.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty price", ErrMalformedQuote)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %v", ErrMalformedQuote, raw, err)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: non-positive price %s", ErrMalformedQuote, d)
	}
	return d, nil
}
