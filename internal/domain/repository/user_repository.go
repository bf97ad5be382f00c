package repository

import (
	"hospital-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
}
