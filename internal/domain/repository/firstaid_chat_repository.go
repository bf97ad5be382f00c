package repository

import (
	"hospital-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type FirstAidChatRepository interface {
	Create(db *gorm.DB, chat *entity.FirstAidChat) error
}
