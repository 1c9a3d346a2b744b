package application

import (
	"bytes"
	"context"
	"errors"
	"time"

	"pricewatch/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrStore    = errors.New("store error")
	errUpstream = errors.New("status 500")
)

var _ Clock = (*fakeClock)(nil)
var _ PriceFetcher = (*scriptedFetcher)(nil)
var _ SampleStore = (*memStore)(nil)

// fakeClock only advances on Sleep, or when a fetcher simulates latency.
type fakeClock struct {
	now    time.Time
	sleeps int
	err    error
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if c.err != nil {
		return c.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps++
	c.now = c.now.Add(d)
	return nil
}

// scriptedFetcher fails on the 1-based calls listed in failOn.
type scriptedFetcher struct {
	clock   *fakeClock
	latency time.Duration
	price   string
	failOn  map[int]bool
	calls   int
}

func (f *scriptedFetcher) Get(context.Context) (domain.Quote, error) {
	f.calls++
	if f.clock != nil {
		f.clock.now = f.clock.now.Add(f.latency)
	}
	if f.failOn[f.calls] {
		return domain.Quote{}, errUpstream
	}
	return domain.Quote{
		Pair:     "BTC/USDT",
		Exchange: "Binance",
		Price:    decimal.RequireFromString(f.price),
	}, nil
}

type memStore struct {
	written domain.SampleSeries
	writes  int
	err     error
}

func (s *memStore) Write(series domain.SampleSeries) error {
	if s.err != nil {
		return s.err
	}
	s.writes++
	s.written = append(domain.SampleSeries(nil), series...)
	return nil
}

func (s *memStore) Read() (domain.SampleSeries, error) { return s.written, nil }

func (s *memStore) Location() string { return "mem://samples" }

func newTestMonitor(f PriceFetcher, st SampleStore, c Clock) (*Monitor, *bytes.Buffer) {
	var out bytes.Buffer
	return NewMonitor(f, st, WithClock(c), WithOutput(&out)), &out
}
