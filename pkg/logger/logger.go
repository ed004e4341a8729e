package logger

import (
	"catalog-service/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var instance *zap.Logger

// InitLogger builds the global logger from configuration
func InitLogger(cfg *config.Config) {
	c := zap.NewProductionConfig()
	c.OutputPaths = []string{"stdout"}
	if level, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
		c.Level = zap.NewAtomicLevelAt(level)
	}
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	instance = logger
}

// GetLogger returns the global logger, building a default one if
// InitLogger has not run yet
func GetLogger() *zap.Logger {
	if instance == nil {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		instance = logger
	}
	return instance
}
