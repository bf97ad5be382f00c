package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateOfBirthLayout is the calendar format accepted for User.DOB.
const DateOfBirthLayout = "2006-01-02"

// User is a patient account.
type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Mobile       string    `gorm:"type:varchar(32)" json:"mobile,omitempty"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Height       *float64  `json:"height,omitempty"`
	Weight       *float64  `json:"weight,omitempty"`
	DOB          string    `gorm:"column:dob;type:varchar(32)" json:"dob,omitempty"`
	Age          *int      `json:"age,omitempty"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ParseDateOfBirth accepts a calendar date or a full RFC 3339 timestamp.
func ParseDateOfBirth(dob string) (time.Time, error) {
	if t, err := time.Parse(DateOfBirthLayout, dob); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, dob)
}

// RecomputeAge derives Age from DOB in whole calendar years: the age goes up
// on the birthday itself. An empty DOB clears the age.
func (u *User) RecomputeAge(now time.Time) error {
	if u.DOB == "" {
		u.Age = nil
		return nil
	}
	birth, err := ParseDateOfBirth(u.DOB)
	if err != nil {
		return err
	}
	age := calendarYears(birth, now)
	u.Age = &age
	return nil
}

func calendarYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
