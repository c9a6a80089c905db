package logger

import (
	"io"
	"os"
	"strings"

	"redeploy/internal/core"
	"redeploy/internal/core/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var verbose bool

// EnableVerbose forces debug level for every logger created afterwards.
func EnableVerbose() {
	verbose = true
}

func ProvideLogger(configRepository core.ConfigRepository) (*zap.Logger, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(config.Log, os.Stderr), nil
}

// New builds a logger writing to out. Diagnostics never go to stdout, which is
// reserved for command output.
func New(cfg domain.LogConfig, out io.Writer) *zap.Logger {
	level := parseLevel(cfg.Level)
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		FunctionKey:    zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if strings.ToLower(cfg.Format) == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(out), level))
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
