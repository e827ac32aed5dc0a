package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

// ZapLogger wraps a zap.Logger so callers depend on this package's Field
// abstraction instead of zap directly.
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

// InitZapLoggerFromConfig creates a ZapLogger from application config.
// Development environments get a human-readable console encoder; everything
// else logs structured JSON.
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logger.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Logger.Environment == "local" || cfg.Logger.Environment == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	appLogger := &ZapLogger{
		Logger: zapLogger.With(
			zap.String("app", cfg.App.Name),
			zap.String("version", cfg.App.Version),
		),
		sugar: zapLogger.Sugar(),
	}

	SetGlobalLogger(appLogger)
	return appLogger, nil
}

// Sugar returns the sugared logger for printf-style logging.
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes any buffered log entries.
func (l *ZapLogger) Close() error {
	// Sync can fail on stderr; that is not actionable.
	_ = l.Logger.Sync()
	return nil
}
