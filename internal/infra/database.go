package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"boystrip/internal/config"
	"boystrip/internal/models/db_models"
	"boystrip/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects to the store named by DB_DRIVER.
func OpenDatabase(cfg config.DatabaseConfig, log *logger.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Driver) {
	case "postgres":
		dialector = postgres.Open(cfg.PostgresURL)
	case "sqlite":
		// foreign keys are not declared, but WAL keeps readers off the writer's back
		dialector = sqlite.Open(cfg.SQLitePath + "?_journal_mode=WAL&_busy_timeout=5000")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if strings.EqualFold(cfg.Driver, "sqlite") {
		// sqlite serialises writers anyway; one connection avoids SQLITE_BUSY
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("driver", cfg.Driver).Msg("database connected")
	return db, nil
}

// Models lists every table the service owns, in creation order.
func Models() []interface{} {
	return []interface{}{
		&db_models.Profile{},
		&db_models.Activity{},
		&db_models.Vote{},
		&db_models.Comment{},
		&db_models.Accommodation{},
		&db_models.Room{},
		&db_models.AIPayment{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func CloseDatabase(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	} else {
		log.Info().Msg("database connection closed")
	}
}

// Ping is used by the health check.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
