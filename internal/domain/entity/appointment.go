package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents where an appointment is in the daily queue
type AppointmentStatus string

const (
	AppointmentStatusBooked         AppointmentStatus = "Booked"
	AppointmentStatusInConsultation AppointmentStatus = "In Consultation"
	AppointmentStatusCompleted      AppointmentStatus = "Completed"
	AppointmentStatusCancelled      AppointmentStatus = "Cancelled"
)

// IsTransitionTarget reports whether s can be set on an existing appointment.
// Booked is only ever assigned at creation.
func (s AppointmentStatus) IsTransitionTarget() bool {
	switch s {
	case AppointmentStatusInConsultation, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a patient's request to see a hospital's doctor
type Appointment struct {
	ID            string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID        string            `gorm:"type:varchar(36);not null;index" json:"user_id"`
	HospitalID    string            `gorm:"type:varchar(36);not null;index" json:"hospital_id"`
	DoctorID      string            `gorm:"type:varchar(36);not null;index" json:"doctor_id"`
	Problem       string            `gorm:"type:text" json:"problem,omitempty"`
	Status        AppointmentStatus `gorm:"type:varchar(32);not null;default:'Booked';index" json:"status"`
	PreferredTime string            `gorm:"type:varchar(255)" json:"preferred_time,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"hospital,omitempty"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = AppointmentStatusBooked
	}
	// created_at is stored in UTC so day-window queries compare like with like.
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return nil
}
