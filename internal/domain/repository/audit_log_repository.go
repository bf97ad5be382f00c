package repository

import (
	"hospital-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByActorID(db *gorm.DB, actorID string) ([]entity.AuditLog, error)
}
