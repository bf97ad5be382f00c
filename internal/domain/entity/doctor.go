package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor is the practitioner profile owned by a Hospital.
type Doctor struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	HospitalID     string    `gorm:"type:varchar(36);not null;index" json:"hospital_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Qualification  string    `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	Specialization string    `gorm:"type:varchar(255);index" json:"specialization,omitempty"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Coordinates returns the doctor's own location, falling back to the
// hospital's. ok is false when neither is known.
func (d *Doctor) Coordinates() (lat, lng float64, ok bool) {
	if d.Latitude != nil && d.Longitude != nil {
		return *d.Latitude, *d.Longitude, true
	}
	if d.Hospital != nil && d.Hospital.Latitude != nil && d.Hospital.Longitude != nil {
		return *d.Hospital.Latitude, *d.Hospital.Longitude, true
	}
	return 0, 0, false
}
