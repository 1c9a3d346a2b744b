package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"pricewatch/internal/domain"
	defaults "pricewatch/internal/infrastructure/config"

	// Populates the environment from .env before any package reads it.
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	LogFile  string
	// Schedule
	Interval time.Duration
	Duration time.Duration
	// Provider
	Provider       string
	APIBase        string
	Pair           domain.Pair
	Exchange       string
	RequestTimeout time.Duration
	// Output
	OutputPath string
	ChartPath  string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durationDef(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
		Interval:       durationDef(getEnv("MONITOR_INTERVAL", ""), defaults.DefaultInterval),
		Duration:       durationDef(getEnv("MONITOR_DURATION", ""), defaults.DefaultDuration),
		Provider:       getEnv("PRICE_PROVIDER", defaults.DefaultProvider),
		APIBase:        getEnv("PRICE_API_BASE", defaults.DefaultAPIBase),
		Pair:           domain.Pair(getEnv("PRICE_PAIR", defaults.DefaultPair)),
		Exchange:       getEnv("PRICE_EXCHANGE", defaults.DefaultExchange),
		RequestTimeout: time.Duration(atoiDef(getEnv("REQUEST_TIMEOUT_MS", ""), int(defaults.DefaultRequestTimeout/time.Millisecond))) * time.Millisecond,
		OutputPath:     getEnv("OUTPUT_PATH", defaults.DefaultOutputPath),
		ChartPath:      getEnv("CHART_PATH", defaults.DefaultChartPath),
	}
}

// Validate rejects settings the monitor cannot run with.
func (c Config) Validate() error {
	if c.Interval <= 0 || c.Duration < 0 {
		return fmt.Errorf("%w: interval=%s duration=%s", domain.ErrInvalidSchedule, c.Interval, c.Duration)
	}
	if !domain.ValidatePair(string(c.Pair)) {
		return fmt.Errorf("invalid pair %q", c.Pair)
	}
	switch c.Provider {
	case "binance", "ticker", "fake":
	default:
		return fmt.Errorf("unsupported PRICE_PROVIDER=%q", c.Provider)
	}
	if c.OutputPath == "" || c.ChartPath == "" {
		return fmt.Errorf("output and chart paths are required")
	}
	return nil
}

// ApplyArgs overrides the schedule with positional "interval duration"
// arguments given in seconds. No arguments leaves the config unchanged.
func (c Config) ApplyArgs(args []string) (Config, error) {
	switch len(args) {
	case 0:
		return c, nil
	case 2:
	default:
		return c, fmt.Errorf("usage: monitor [interval-seconds duration-seconds]")
	}
	interval, err := parseSeconds(args[0])
	if err != nil {
		return c, fmt.Errorf("interval: %w", err)
	}
	duration, err := parseSeconds(args[1])
	if err != nil {
		return c, fmt.Errorf("duration: %w", err)
	}
	c.Interval, c.Duration = interval, duration
	return c, nil
}

// maxSeconds keeps f*time.Second within the int64 range of time.Duration.
var maxSeconds = float64(math.MaxInt64/int64(time.Second)) - 1

func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxSeconds {
		return 0, fmt.Errorf("%q is not a representable number of seconds", s)
	}
	return time.Duration(f * float64(time.Second)), nil
}
