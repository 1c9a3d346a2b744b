package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"pricewatch/internal/application"
	"pricewatch/internal/domain"
	"pricewatch/internal/infrastructure/httpx"

	"github.com/adshao/go-binance/v2"
)

// Binance reads the spot price through the go-binance REST client.
// Only public market data is requested, so no API key is needed.
type Binance struct {
	client   *binance.Client
	pair     domain.Pair
	exchange string
}

var _ application.PriceFetcher = (*Binance)(nil)

// NewBinance builds a provider for pair. An empty baseURL keeps the client's
// default endpoint.
func NewBinance(baseURL string, httpClient *http.Client, pair domain.Pair, exchange string) *Binance {
	c := binance.NewClient("", "")
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	hc := &http.Client{}
	if httpClient != nil {
		copied := *httpClient
		hc = &copied
	}
	hc.Transport = okOnly{base: hc.Transport}
	c.HTTPClient = hc
	return &Binance{client: c, pair: pair, exchange: exchange}
}

// okOnly fails every response other than 200 OK. The SDK itself only rejects
// statuses of 400 and above.
type okOnly struct {
	base http.RoundTripper
}

func (t okOnly) RoundTrip(r *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(r)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &httpx.StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}

func (p *Binance) Get(ctx context.Context) (domain.Quote, error) {
	symbol := p.pair.Symbol()
	prices, err := p.client.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("binance: list prices: %w", err)
	}
	if len(prices) != 1 || prices[0] == nil {
		return domain.Quote{}, fmt.Errorf("binance: %w: expected one price, got %d", domain.ErrMalformedQuote, len(prices))
	}
	sp := prices[0]
	if sp.Symbol != "" && sp.Symbol != symbol {
		return domain.Quote{}, fmt.Errorf("binance: %w: symbol %s, want %s", domain.ErrMalformedQuote, sp.Symbol, symbol)
	}

	price, err := domain.ParsePrice(sp.Price)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("binance: %w", err)
	}
	return domain.Quote{
		Pair:     p.pair,
		Exchange: p.exchange,
		Price:    price,
	}, nil
}

