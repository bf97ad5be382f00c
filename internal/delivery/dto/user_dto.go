package dto

import "time"

// Request DTOs

type RegisterUserRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required"`
	Mobile         string   `json:"mobile"`
	Height         *float64 `json:"height"`
	Weight         *float64 `json:"weight"`
	DOB            string   `json:"dob"`
	Address        string   `json:"address"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	RecaptchaToken string   `json:"recaptchaToken"`
}

// UpdateUserRequest is a partial update: nil fields keep their stored value.
type UpdateUserRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Mobile    *string  `json:"mobile"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
	DOB       *string  `json:"dob"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// Response DTOs

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Height    *float64  `json:"height"`
	Weight    *float64  `json:"weight"`
	DOB       string    `json:"dob"`
	Age       *int      `json:"age"`
	Address   string    `json:"address"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

type UserEnvelope struct {
	User *UserResponse `json:"user"`
}
