package repository

import (
	"errors"
	"time"

	"hospital-booking/internal/domain/entity"
	domainRepo "hospital-booking/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("User").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := applyAppointmentFilter(db, filter).
		Preload("User").
		Order("appointments.created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindCreatedBetween returns appointments created in [from, to).
func (r *appointmentRepository) FindCreatedBetween(db *gorm.DB, filter entity.AppointmentFilter, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := applyAppointmentFilter(db, filter).
		Where("appointments.created_at >= ? AND appointments.created_at < ?", from, to).
		Preload("User").
		Order("appointments.created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus overwrites the status regardless of its current value.
// Returns affected rows: 0 means the id does not exist.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id string, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func applyAppointmentFilter(db *gorm.DB, filter entity.AppointmentFilter) *gorm.DB {
	query := db.Model(&entity.Appointment{})
	if filter.UserID != "" {
		query = query.Where("appointments.user_id = ?", filter.UserID)
	}
	if filter.HospitalID != "" {
		query = query.Where("appointments.hospital_id = ?", filter.HospitalID)
	}
	if filter.DoctorID != "" {
		query = query.Where("appointments.doctor_id = ?", filter.DoctorID)
	}
	return query
}
