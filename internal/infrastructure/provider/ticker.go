package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"pricewatch/internal/application"
	"pricewatch/internal/domain"
	"pricewatch/internal/infrastructure/httpx"
)

const (
	tickerPricePath = "/api/v3/ticker/price"
)

// Ticker reads a spot price from a Binance-compatible ticker endpoint with a
// plain HTTP round trip.
type Ticker struct {
	BaseURL  string
	Pair     domain.Pair
	Exchange string
	Client   *httpx.Client
}

var _ application.PriceFetcher = (*Ticker)(nil)

type tickerPriceResp struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

func (p *Ticker) Get(ctx context.Context) (domain.Quote, error) {
	if p.BaseURL == "" || p.Pair == "" {
		return domain.Quote{}, errors.New("ticker: missing configuration")
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("ticker: invalid base url: %w", err)
	}
	u.Path = tickerPricePath
	q := u.Query()
	q.Set("symbol", p.Pair.Symbol())
	u.RawQuery = q.Encode()

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body tickerPriceResp
	if err := client.GetJSON(ctx, u.String(), &body); err != nil {
		return domain.Quote{}, fmt.Errorf("ticker: %w", err)
	}

	price, err := domain.ParsePrice(body.Price)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("ticker: %w", err)
	}
	return domain.Quote{
		Pair:     p.Pair,
		Exchange: p.Exchange,
		Price:    price,
	}, nil
}
