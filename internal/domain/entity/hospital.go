package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hospital is a care provider account. In practice it owns exactly one Doctor.
type Hospital struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Emergency    bool      `gorm:"not null;default:false" json:"emergency"`
	MorningFrom  string    `gorm:"type:varchar(16)" json:"morning_from,omitempty"`
	MorningTo    string    `gorm:"type:varchar(16)" json:"morning_to,omitempty"`
	EveningFrom  string    `gorm:"type:varchar(16)" json:"evening_from,omitempty"`
	EveningTo    string    `gorm:"type:varchar(16)" json:"evening_to,omitempty"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"doctors,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
