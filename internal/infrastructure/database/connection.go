package database

import (
	"fmt"
	"time"

	"hospital-booking/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the database selected by DB_DRIVER. Driver errors for
// duplicate keys and foreign keys are translated to gorm's sentinel errors.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel(cfg.App.Env)),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}

	switch cfg.DB.Driver {
	case config.DriverSQLite, "":
		return NewSQLiteConnection(cfg.DB, gormCfg)
	case config.DriverPostgres:
		return NewPostgresConnection(cfg.DB, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

func logLevel(env string) logger.LogLevel {
	switch env {
	case "production":
		return logger.Warn
	case "test":
		return logger.Silent
	default:
		return logger.Info
	}
}
