// Package logger holds the process-wide structured logger.
//
// Standard output carries the plugin response, so every log line goes to
// standard error.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

func init() {
	// No-op until Initialize is called, so library use stays silent.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. level is any zap level name
// ("debug", "info", "warn", "error"); empty means "warn".
func Initialize(jsonOutput bool, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	JSONOutput = jsonOutput
	Use(zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl)))
	return nil
}

// Use replaces the global logger with l.
func Use(l *zap.Logger) {
	Logger = l.Sugar()
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InvalidLevel, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}

// Named returns a child logger tagged with a component name.
func Named(component string) *zap.SugaredLogger {
	return Logger.With(FieldComponent, component)
}
