package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogSettings параметры логгера из конфигурации
type LogSettings struct {
	Env     string
	Level   string   // пусто: debug для development, info для production
	Outputs []string // пусто: stdout
}

// NewLogger production-конфиг (JSON) для env=production, иначе консольный с цветными уровнями
func NewLogger(settings LogSettings) (*zap.Logger, error) {
	var config zap.Config

	if settings.Env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if settings.Level != "" {
		level, err := zapcore.ParseLevel(settings.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	config.OutputPaths = []string{"stdout"}
	if len(settings.Outputs) > 0 {
		config.OutputPaths = settings.Outputs
	}
	config.InitialFields = map[string]interface{}{
		"service": "slot_booking",
		"env":     settings.Env,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
