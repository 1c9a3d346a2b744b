package application

import (
	"context"
	"time"

	"pricewatch/internal/domain"
)

// PriceFetcher performs one request/response cycle against a price endpoint.
// A non-nil error means no quote was produced for this call.
type PriceFetcher interface {
	Get(ctx context.Context) (domain.Quote, error)
}

// SampleStore is the durable hand-off between monitoring and plotting.
type SampleStore interface {
	Write(series domain.SampleSeries) error
	Read() (domain.SampleSeries, error)
	Location() string
}

type ChartRenderer interface {
	Render(path string) error
}

type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}
