package repository

import (
	"hospital-booking/internal/domain/entity"
	domainRepo "hospital-booking/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type firstAidChatRepository struct{}

func NewFirstAidChatRepository() domainRepo.FirstAidChatRepository {
	return &firstAidChatRepository{}
}

func (r *firstAidChatRepository) Create(db *gorm.DB, chat *entity.FirstAidChat) error {
	return db.Omit(clause.Associations).Create(chat).Error
}
