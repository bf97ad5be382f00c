package converter

import (
	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Requester contact fields are filled when User is preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:            appointment.ID,
		UserID:        appointment.UserID,
		HospitalID:    appointment.HospitalID,
		DoctorID:      appointment.DoctorID,
		Problem:       appointment.Problem,
		Reason:        appointment.Problem,
		Status:        string(appointment.Status),
		PreferredTime: appointment.PreferredTime,
		CreatedAt:     appointment.CreatedAt,
	}

	if appointment.User != nil {
		response.UserName = appointment.User.Name
		response.UserEmail = appointment.User.Email
		response.UserMobile = appointment.User.Mobile
	}

	return response
}

func AppointmentsToResponse(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
