// Command monitor polls a spot price for a bounded duration, saves the samples
// to CSV and renders them as a chart.
//
// Usage:
//
//	monitor [interval-seconds duration-seconds]
//
// Without arguments the schedule comes from MONITOR_INTERVAL and
// MONITOR_DURATION (10s and 300s by default). The reference run is
// "monitor 6 60".
package main

import (
	"context"
	"os"

	"pricewatch/internal/bootstrap"
	"pricewatch/internal/config"
	"pricewatch/internal/infrastructure/logx"

	"go.uber.org/zap"
)

func main() {
	log := logx.L()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load().ApplyArgs(os.Args[1:])
	if err != nil {
		log.Fatal("parse arguments", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	p, err := bootstrap.InitPipeline(cfg)
	if err != nil {
		log.Fatal("init pipeline", zap.Error(err))
	}
	p.Log.Info("run_started",
		zap.String("provider", cfg.Provider),
		zap.String("pair", string(cfg.Pair)),
		zap.Duration("interval", cfg.Interval),
		zap.Duration("duration", cfg.Duration),
	)
	if err := p.Run(context.Background()); err != nil {
		p.Log.Fatal("run failed", zap.Error(err))
	}
	p.Log.Info("run_finished", zap.String("csv", cfg.OutputPath), zap.String("chart", cfg.ChartPath))
}
