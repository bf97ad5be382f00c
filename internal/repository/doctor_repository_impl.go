package repository

import (
	"errors"
	"strings"

	"hospital-booking/internal/domain/entity"
	domainRepo "hospital-booking/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit(clause.Associations).Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Hospital").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindByHospitalID returns the hospital's first doctor, or nil when it has none.
func (r *doctorRepository) FindByHospitalID(db *gorm.DB, hospitalID string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("hospital_id = ?", hospitalID).Order("created_at ASC").First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAllWithHospital returns doctors with their owning hospital preloaded.
// Specialization is matched as a case-insensitive substring.
func (r *doctorRepository) FindAllWithHospital(db *gorm.DB, filter *entity.DoctorSearchFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Model(&entity.Doctor{})

	if filter != nil && filter.Specialization != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Specialization)) + "%"
		query = query.Where(`LOWER(doctors.specialization) LIKE ? ESCAPE '\'`, pattern)
	}

	err := query.
		Preload("Hospital").
		Order("doctors.created_at ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit(clause.Associations).Save(doctor).Error
}
