package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	UserID        string `json:"userId" validate:"required"`
	HospitalID    string `json:"hospitalId" validate:"required"`
	DoctorID      string `json:"doctorId" validate:"required"`
	Problem       string `json:"problem"`
	PreferredTime string `json:"preferredTime"`
}

type AppointmentListQuery struct {
	UserID     string
	HospitalID string
	DoctorID   string
}

// Response DTOs

type AppointmentResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	HospitalID    string    `json:"hospital_id"`
	DoctorID      string    `json:"doctor_id"`
	Problem       string    `json:"problem"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	PreferredTime string    `json:"preferred_time"`
	CreatedAt     time.Time `json:"created_at"`
	UserName      string    `json:"user_name,omitempty"`
	UserEmail     string    `json:"user_email,omitempty"`
	UserMobile    string    `json:"user_mobile,omitempty"`
}

type AppointmentEnvelope struct {
	Appointment *AppointmentResponse `json:"appointment"`
}

type AppointmentListEnvelope struct {
	Appointments []AppointmentResponse `json:"appointments"`
}
