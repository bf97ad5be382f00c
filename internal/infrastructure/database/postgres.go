package database

import (
	"errors"
	"fmt"
	"time"

	"hospital-booking/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	postgresMaxIdleConns    = 10
	postgresMaxOpenConns    = 50
	postgresConnMaxLifetime = 30 * time.Minute
)

// postgresDSN pins the session to UTC so day-window queries compare the same
// instants the sqlite driver stores.
func postgresDSN(cfg config.DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode,
	)
}

func NewPostgresConnection(cfg config.DBConfig, gormCfg *gorm.Config) (*gorm.DB, error) {
	if cfg.Host == "" || cfg.Name == "" {
		return nil, errors.New("postgres driver needs DB_HOST and DB_NAME")
	}

	db, err := gorm.Open(postgres.Open(postgresDSN(cfg)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres at %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(postgresMaxIdleConns)
	sqlDB.SetMaxOpenConns(postgresMaxOpenConns)
	sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

	logrus.Infof("Connected to PostgreSQL database %s on %s", cfg.Name, cfg.Host)

	return db, nil
}
