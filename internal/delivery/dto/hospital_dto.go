package dto

import "time"

// OperatingHours accepts both camelCase and snake_case window names.
// camelCase wins when both are sent.
type OperatingHours struct {
	MorningFrom      *string `json:"morningFrom"`
	MorningTo        *string `json:"morningTo"`
	EveningFrom      *string `json:"eveningFrom"`
	EveningTo        *string `json:"eveningTo"`
	MorningFromSnake *string `json:"morning_from"`
	MorningToSnake   *string `json:"morning_to"`
	EveningFromSnake *string `json:"evening_from"`
	EveningToSnake   *string `json:"evening_to"`
}

func firstSet(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func (h OperatingHours) MorningFromValue() *string {
	return firstSet(h.MorningFrom, h.MorningFromSnake)
}

func (h OperatingHours) MorningToValue() *string {
	return firstSet(h.MorningTo, h.MorningToSnake)
}

func (h OperatingHours) EveningFromValue() *string {
	return firstSet(h.EveningFrom, h.EveningFromSnake)
}

func (h OperatingHours) EveningToValue() *string {
	return firstSet(h.EveningTo, h.EveningToSnake)
}

// Request DTOs

// RegisterHospitalRequest creates a hospital and its doctor together.
type RegisterHospitalRequest struct {
	Name                 string   `json:"name" validate:"required"`
	Email                string   `json:"email" validate:"required,email"`
	Password             string   `json:"password" validate:"required"`
	Emergency            bool     `json:"emergency"`
	Address              string   `json:"address"`
	Latitude             *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude            *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	DoctorName           string   `json:"doctorName" validate:"required"`
	DoctorQualification  string   `json:"doctorQualification"`
	DoctorSpecialization string   `json:"doctorSpecialization"`
	DoctorDescription    string   `json:"doctorDescription"`
	RecaptchaToken       string   `json:"recaptchaToken"`
	OperatingHours
}

type UpdateHospitalRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Emergency *bool    `json:"emergency"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	OperatingHours
}

// Response DTOs

type HospitalResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Emergency   bool            `json:"emergency"`
	MorningFrom string          `json:"morning_from"`
	MorningTo   string          `json:"morning_to"`
	EveningFrom string          `json:"evening_from"`
	EveningTo   string          `json:"evening_to"`
	Address     string          `json:"address"`
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	CreatedAt   time.Time       `json:"created_at"`
	Doctor      *DoctorResponse `json:"doctor,omitempty"`
}

type HospitalEnvelope struct {
	Hospital *HospitalResponse `json:"hospital"`
	Doctor   *DoctorResponse   `json:"doctor"`
}
