package repository

import (
	"hospital-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id string) (*entity.Doctor, error)
	FindByHospitalID(db *gorm.DB, hospitalID string) (*entity.Doctor, error)
	FindAllWithHospital(db *gorm.DB, filter *entity.DoctorSearchFilter) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}
