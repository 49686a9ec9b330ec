package config_fx

import (
	"boystrip/internal/config"
	"boystrip/pkg/logger"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideConfig, provideLogger)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(cfg *config.Config) *logger.Logger {
	return logger.NewLogger("api", cfg.LogLevel)
}
