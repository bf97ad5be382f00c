package dto

import "time"

// Request DTOs

type UpdateDoctorRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=1"`
	Qualification  *string  `json:"qualification"`
	Specialization *string  `json:"specialization"`
	Description    *string  `json:"description"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// DoctorSearchQuery is parsed from the query string. Coordinates are used
// only when both are present.
type DoctorSearchQuery struct {
	Specialization string
	UserLat        *float64
	UserLng        *float64
}

// Response DTOs

type DoctorResponse struct {
	ID             string    `json:"id"`
	HospitalID     string    `json:"hospital_id"`
	Name           string    `json:"name"`
	Qualification  string    `json:"qualification"`
	Specialization string    `json:"specialization"`
	Description    string    `json:"description"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	CreatedAt      time.Time `json:"created_at"`
}

// DoctorSearchResult is a doctor annotated with its hospital and, when the
// requester's location is known, the distance to it.
type DoctorSearchResult struct {
	DoctorResponse
	HospitalName      string   `json:"hospital_name"`
	HospitalAddress   string   `json:"hospital_address"`
	HospitalLatitude  *float64 `json:"hospital_latitude"`
	HospitalLongitude *float64 `json:"hospital_longitude"`
	DistanceKm        *float64 `json:"distance_km"`
}

type DoctorEnvelope struct {
	Doctor *DoctorResponse `json:"doctor"`
}

type DoctorListEnvelope struct {
	Doctors []DoctorSearchResult `json:"doctors"`
}
