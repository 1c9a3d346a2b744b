package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pricewatch/internal/application"
	"pricewatch/internal/config"
	"pricewatch/internal/domain"
	"pricewatch/internal/infrastructure/chart"
	"pricewatch/internal/infrastructure/csvstore"
	"pricewatch/internal/infrastructure/httpx"
	"pricewatch/internal/infrastructure/logx"
	"pricewatch/internal/infrastructure/provider"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunID identifies one monitor-then-plot cycle in the logs.
type RunID string

// Pipeline is one monitor-then-plot cycle.
type Pipeline struct {
	Config   config.Config
	RunID    RunID
	Log      *zap.Logger
	Monitor  *application.Monitor
	Renderer application.ChartRenderer
}

func ProvideRunID() RunID { return RunID(uuid.NewString()) }

func ProvideLogger(id RunID) *zap.Logger { return logx.WithRun(string(id)) }

func ProvideHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.RequestTimeout}
}

func ProvidePriceFetcher(cfg config.Config, hc *http.Client) (application.PriceFetcher, error) {
	switch cfg.Provider {
	case "binance":
		return provider.NewBinance(cfg.APIBase, hc, cfg.Pair, cfg.Exchange), nil
	case "ticker":
		return &provider.Ticker{
			BaseURL:  cfg.APIBase,
			Pair:     cfg.Pair,
			Exchange: cfg.Exchange,
			Client:   &httpx.Client{HTTP: hc},
		}, nil
	case "fake":
		return provider.NewFake(65000.12, cfg.Pair, cfg.Exchange), nil
	default:
		return nil, fmt.Errorf("unsupported PRICE_PROVIDER=%q", cfg.Provider)
	}
}

func ProvideSampleStore(cfg config.Config) application.SampleStore {
	return csvstore.New(cfg.OutputPath)
}

func ProvideMonitor(cfg config.Config, f application.PriceFetcher, s application.SampleStore, log *zap.Logger) *application.Monitor {
	log = log.With(zap.String("symbol", cfg.Pair.Symbol()))
	return application.NewMonitor(f, s, application.WithLogger(log))
}

func ProvideChartRenderer(cfg config.Config, log *zap.Logger) application.ChartRenderer {
	return &chart.Plotter{Output: cfg.ChartPath, Log: log}
}

func NewPipeline(cfg config.Config, id RunID, log *zap.Logger, m *application.Monitor, r application.ChartRenderer) *Pipeline {
	return &Pipeline{Config: cfg, RunID: id, Log: log, Monitor: m, Renderer: r}
}

// Run monitors for the configured schedule, then renders the stored samples.
// A run that collected nothing is not an error; the chart is just skipped.
func (p *Pipeline) Run(ctx context.Context) error {
	if _, err := p.Monitor.Run(ctx, p.Config.Interval, p.Config.Duration); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	err := p.Renderer.Render(p.Config.OutputPath)
	if errors.Is(err, domain.ErrEmptySeries) {
		p.Log.Warn("chart_skipped", zap.String("source", p.Config.OutputPath), zap.Error(err))
		return nil
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
