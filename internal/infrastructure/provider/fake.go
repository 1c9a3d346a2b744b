package provider

import (
	"context"

	"pricewatch/internal/application"
	"pricewatch/internal/domain"

	"github.com/shopspring/decimal"
)

// Ensure Fake implements application.PriceFetcher.
var _ application.PriceFetcher = (*Fake)(nil)

type Fake struct {
	price    decimal.Decimal
	pair     domain.Pair
	exchange string
}

func NewFake(price float64, pair domain.Pair, exchange string) *Fake {
	return &Fake{price: decimal.NewFromFloat(price), pair: pair, exchange: exchange}
}

func (f *Fake) Get(context.Context) (domain.Quote, error) {
	return domain.Quote{
		Pair:     f.pair,
		Exchange: f.exchange,
		Price:    f.price,
	}, nil
}
