package db_fx

import (
	"context"

	"boystrip/internal/config"
	"boystrip/internal/infra"
	"boystrip/pkg/logger"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if err := infra.Migrate(db); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, log)
			return nil
		},
	})
	return db, nil
}
