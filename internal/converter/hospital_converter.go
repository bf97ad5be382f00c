package converter

import (
	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO,
// nesting doctor when it is known.
func HospitalToResponse(hospital *entity.Hospital, doctor *entity.Doctor) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:          hospital.ID,
		Name:        hospital.Name,
		Email:       hospital.Email,
		Emergency:   hospital.Emergency,
		MorningFrom: hospital.MorningFrom,
		MorningTo:   hospital.MorningTo,
		EveningFrom: hospital.EveningFrom,
		EveningTo:   hospital.EveningTo,
		Address:     hospital.Address,
		Latitude:    hospital.Latitude,
		Longitude:   hospital.Longitude,
		CreatedAt:   hospital.CreatedAt,
		Doctor:      DoctorToResponse(doctor),
	}
}

func HospitalToEnvelope(hospital *entity.Hospital, doctor *entity.Doctor) *dto.HospitalEnvelope {
	return &dto.HospitalEnvelope{
		Hospital: HospitalToResponse(hospital, doctor),
		Doctor:   DoctorToResponse(doctor),
	}
}
