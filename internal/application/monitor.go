package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"pricewatch/internal/domain"

	"go.uber.org/zap"
)

// DisplayLayout is used for the per-sample console line.
const DisplayLayout = "2006-01-02 15:04:05.000000"

type Monitor struct {
	fetcher PriceFetcher
	store   SampleStore
	clock   Clock
	out     io.Writer
	log     *zap.Logger
}

type Option func(*Monitor)

func WithClock(c Clock) Option { return func(m *Monitor) { m.clock = c } }
func WithOutput(w io.Writer) Option { return func(m *Monitor) { m.out = w } }
func WithLogger(l *zap.Logger) Option { return func(m *Monitor) { m.log = l } }

func NewMonitor(fetcher PriceFetcher, store SampleStore, opts ...Option) *Monitor {
	m := &Monitor{
		fetcher: fetcher,
		store:   store,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = realClock{}
	}
	if m.out == nil {
		m.out = os.Stdout
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	return m
}

// Collect polls the fetcher every interval until duration has elapsed since
// the first tick and returns the successful samples in receipt order.
// Fetch failures are logged and skipped; they never end the loop.
func (m *Monitor) Collect(ctx context.Context, interval, duration time.Duration) (domain.SampleSeries, error) {
	if interval <= 0 || duration < 0 {
		return nil, fmt.Errorf("%w: interval=%s duration=%s", domain.ErrInvalidSchedule, interval, duration)
	}

	series := domain.SampleSeries{}
	start := m.clock.Now()
	m.log.Info("monitor_started", zap.Duration("interval", interval), zap.Duration("duration", duration))

	tick := 0
	for m.clock.Now().Sub(start) < duration {
		tick++
		q, err := m.fetcher.Get(ctx)
		if err != nil {
			m.log.Warn("fetch_failed", zap.Int("tick", tick), zap.Error(err))
		} else {
			ts := m.clock.Now()
			fmt.Fprintf(m.out, "%s - Price: $%s - Pair: %s - Exchange: %s\n",
				ts.Format(DisplayLayout), q.Price.String(), q.Pair, q.Exchange)
			series = series.Append(domain.NewSample(ts, q))
		}

		if err := m.clock.Sleep(ctx, interval); err != nil {
			m.log.Warn("monitor_interrupted", zap.Int("tick", tick), zap.Error(err))
			break
		}
	}

	m.log.Info("monitor_finished", zap.Int("ticks", tick), zap.Int("samples", series.Len()))
	return series, nil
}

// Run collects samples and writes them to the store. A write failure is
// returned; the collected series is returned either way.
func (m *Monitor) Run(ctx context.Context, interval, duration time.Duration) (domain.SampleSeries, error) {
	series, err := m.Collect(ctx, interval, duration)
	if err != nil {
		return nil, err
	}
	if err := m.store.Write(series); err != nil {
		return series, fmt.Errorf("write samples to %s: %w", m.store.Location(), err)
	}
	fmt.Fprintf(m.out, "Monitoring completed. Data saved to '%s'.\n", m.store.Location())
	return series, nil
}
