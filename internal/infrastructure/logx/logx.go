package logx

import (
	"os"
	"strings"
	"sync"

	"pricewatch/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// New builds a JSON logger writing to stderr and, when file is set, to a
// size-rotated log file as well. Stdout is left to the monitor's console lines.
func New(level, file string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	if level != "" {
		_ = lvl.UnmarshalText([]byte(strings.ToLower(level)))
	}

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}
	if file != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
		}))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.NewMultiWriteSyncer(sinks...), lvl)
	return zap.New(core, zap.AddCaller())
}

// L returns the package-level logger, built from the environment on first use.
func L() *zap.Logger {
	once.Do(func() {
		appCfg := config.Load()
		logger = New(appCfg.LogLevel, appCfg.LogFile)
	})
	return logger
}

// WithRun tags every entry with the id of one monitor run.
func WithRun(runID string) *zap.Logger {
	return L().With(zap.String("run_id", runID))
}
