//go:build wireinject

package bootstrap

import (
	"pricewatch/internal/config"

	"github.com/google/wire"
)

var pipelineSet = wire.NewSet(
	ProvideRunID,
	ProvideLogger,
	ProvideHTTPClient,
	ProvidePriceFetcher,
	ProvideSampleStore,
	ProvideMonitor,
	ProvideChartRenderer,
	NewPipeline,
)

// InitPipeline builds the monitor-then-plot pipeline from cfg.
func InitPipeline(cfg config.Config) (*Pipeline, error) {
	wire.Build(pipelineSet)
	return nil, nil
}
