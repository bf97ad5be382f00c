package database

import (
	"fmt"

	"hospital-booking/config"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// sqlitePragmas turn on foreign keys (off by default in sqlite) and let
// concurrent writers wait for the lock instead of failing immediately.
const sqlitePragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

func NewSQLiteConnection(cfg config.DBConfig, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path+sqlitePragmas), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Path, err)
	}

	logrus.Infof("Successfully opened SQLite database at %s", cfg.Path)

	return db, nil
}
