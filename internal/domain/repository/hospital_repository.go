package repository

import (
	"hospital-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(db *gorm.DB, hospital *entity.Hospital) error
	FindByEmail(db *gorm.DB, email string) (*entity.Hospital, error)
	FindByID(db *gorm.DB, id string) (*entity.Hospital, error)
	Update(db *gorm.DB, hospital *entity.Hospital) error
}
