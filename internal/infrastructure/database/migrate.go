package database

import (
	"fmt"

	"hospital-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// models are listed parent first so foreign keys resolve on create.
func models() []interface{} {
	return []interface{}{
		&entity.User{},
		&entity.Hospital{},
		&entity.Doctor{},
		&entity.Appointment{},
		&entity.FirstAidChat{},
		&entity.AuditLog{},
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logrus.Info("Database schema is up to date")
	return nil
}

// Reset drops every table and recreates the schema empty.
func Reset(db *gorm.DB) error {
	all := models()
	// Children go first.
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	logrus.Warn("All tables dropped")
	return Migrate(db)
}
