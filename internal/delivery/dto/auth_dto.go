package dto

// Request DTOs

type LoginRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// Response DTOs

type UserLoginResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
}

type HospitalLoginResponse struct {
	Hospital  *HospitalResponse `json:"hospital"`
	Doctor    *DoctorResponse   `json:"doctor"`
	Token     string            `json:"token"`
	ExpiresIn int64             `json:"expires_in"`
}

type SessionResponse struct {
	Role      string `json:"role"`
	SubjectID string `json:"subject_id"`
}
