package converter

import (
	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		HospitalID:     doctor.HospitalID,
		Name:           doctor.Name,
		Qualification:  doctor.Qualification,
		Specialization: doctor.Specialization,
		Description:    doctor.Description,
		Latitude:       doctor.Latitude,
		Longitude:      doctor.Longitude,
		CreatedAt:      doctor.CreatedAt,
	}
}

// DoctorToSearchResult flattens the doctor's hospital into the result.
// Distance is left for the caller to fill in.
func DoctorToSearchResult(doctor *entity.Doctor) dto.DoctorSearchResult {
	result := dto.DoctorSearchResult{
		DoctorResponse: *DoctorToResponse(doctor),
	}
	if doctor.Hospital != nil {
		result.HospitalName = doctor.Hospital.Name
		result.HospitalAddress = doctor.Hospital.Address
		result.HospitalLatitude = doctor.Hospital.Latitude
		result.HospitalLongitude = doctor.Hospital.Longitude
	}
	return result
}
