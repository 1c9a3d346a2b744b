package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"pricewatch/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Collect_SteadyEndpoint(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	f := &scriptedFetcher{price: "65000.12"}
	m, out := newTestMonitor(f, &memStore{}, clock)

	series, err := m.Collect(context.Background(), 6*time.Second, 18*time.Second)
	require.NoError(t, err)
	require.Len(t, series, 3)
	for _, s := range series {
		require.True(t, s.Price.Equal(decimal.RequireFromString("65000.12")))
		require.Equal(t, domain.Pair("BTC/USDT"), s.Pair)
		require.Equal(t, "Binance", s.Exchange)
	}
	require.Equal(t, 3, strings.Count(out.String(), "Price: $65000.12 - Pair: BTC/USDT - Exchange: Binance"))
}

func Test_Collect_SkipsFailedTicks(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	f := &scriptedFetcher{price: "100.5", failOn: map[int]bool{2: true, 4: true}}
	m, _ := newTestMonitor(f, &memStore{}, clock)

	series, err := m.Collect(context.Background(), time.Second, 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, 5, f.calls)
	require.Equal(t, 5, clock.sleeps)
	require.Len(t, series, 3)

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, start, series[0].Timestamp)
	require.Equal(t, start.Add(2*time.Second), series[1].Timestamp)
	require.Equal(t, start.Add(4*time.Second), series[2].Timestamp)
}

func Test_Collect_ZeroDuration(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	f := &scriptedFetcher{price: "1"}
	m, _ := newTestMonitor(f, &memStore{}, clock)

	series, err := m.Collect(context.Background(), time.Minute, 0)
	require.NoError(t, err)
	require.LessOrEqual(t, series.Len(), 1)
	require.Zero(t, clock.sleeps)
}

func Test_Collect_TerminatesWithinBound(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	start := clock.Now()
	f := &scriptedFetcher{clock: clock, latency: 2 * time.Second, price: "42"}
	m, _ := newTestMonitor(f, &memStore{}, clock)

	interval, duration := 6*time.Second, 18*time.Second
	series, err := m.Collect(context.Background(), interval, duration)
	require.NoError(t, err)
	require.Len(t, series, 3)
	require.LessOrEqual(t, clock.Now().Sub(start), duration+interval+f.latency)
	// Timestamps are taken after the fetch returns.
	require.Equal(t, start.Add(2*time.Second), series[0].Timestamp)
}

func Test_Collect_InvalidSchedule(t *testing.T) {
	t.Parallel()
	m, _ := newTestMonitor(&scriptedFetcher{price: "1"}, &memStore{}, newFakeClock())

	_, err := m.Collect(context.Background(), 0, time.Second)
	require.ErrorIs(t, err, domain.ErrInvalidSchedule)
	_, err = m.Collect(context.Background(), time.Second, -time.Second)
	require.ErrorIs(t, err, domain.ErrInvalidSchedule)
}

func Test_Collect_StopsWhenContextDone(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &scriptedFetcher{price: "1"}
	m, _ := newTestMonitor(f, &memStore{}, newFakeClock())

	series, err := m.Collect(ctx, time.Second, time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, f.calls)
	require.Len(t, series, 1)
}

func Test_Run_WritesSeriesAndReportsCompletion(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	m, out := newTestMonitor(&scriptedFetcher{price: "65000.12"}, store, newFakeClock())

	series, err := m.Run(context.Background(), 6*time.Second, 18*time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, store.writes)
	require.Equal(t, series, store.written)
	require.Contains(t, out.String(), "Monitoring completed. Data saved to 'mem://samples'.")
}

func Test_Run_EmptySeriesStillWritten(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	m, _ := newTestMonitor(&scriptedFetcher{price: "1", failOn: map[int]bool{1: true, 2: true}}, store, newFakeClock())

	series, err := m.Run(context.Background(), time.Second, 2*time.Second)
	require.NoError(t, err)
	require.Empty(t, series)
	require.Equal(t, 1, store.writes)
}

func Test_Run_StoreFailureIsReturned(t *testing.T) {
	t.Parallel()
	store := &memStore{err: ErrStore}
	m, out := newTestMonitor(&scriptedFetcher{price: "1"}, store, newFakeClock())

	series, err := m.Run(context.Background(), time.Second, 3*time.Second)
	require.ErrorIs(t, err, ErrStore)
	require.Len(t, series, 3)
	require.NotContains(t, out.String(), "Monitoring completed")
}
