package config

import "time"

const (
	DefaultInterval       = 10 * time.Second
	DefaultDuration       = 300 * time.Second
	DefaultProvider       = "binance"
	DefaultAPIBase        = "https://api.binance.com"
	DefaultPair           = "BTC/USDT"
	DefaultExchange       = "Binance"
	DefaultRequestTimeout = 5 * time.Second
	DefaultOutputPath     = "binance_prices.csv"
	DefaultChartPath      = "binance_prices.png"
)
