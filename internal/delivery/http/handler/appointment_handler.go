package handler

import (
	"net/http"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/response"
	"hospital-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment handles POST /api/appointments
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create appointment")
		return
	}

	response.OK(w, dto.AppointmentEnvelope{Appointment: appointment})
}

func listQuery(r *http.Request) *dto.AppointmentListQuery {
	q := r.URL.Query()
	return &dto.AppointmentListQuery{
		UserID:     q.Get("userId"),
		HospitalID: q.Get("hospitalId"),
		DoctorID:   q.Get("doctorId"),
	}
}

// ListAppointments handles GET /api/appointments?userId=&hospitalId=&doctorId=
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.List(r.Context(), listQuery(r))
	if err != nil {
		writeError(w, err, "Failed to list appointments")
		return
	}

	response.OK(w, dto.AppointmentListEnvelope{Appointments: appointments})
}

// ListTodayAppointments handles GET /api/appointments/today?hospitalId=&doctorId=
func (h *AppointmentHandler) ListTodayAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListToday(r.Context(), listQuery(r))
	if err != nil {
		writeError(w, err, "Failed to list today's appointments")
		return
	}

	response.OK(w, dto.AppointmentListEnvelope{Appointments: appointments})
}

// Transition returns a handler that moves the appointment in the path to status.
func (h *AppointmentHandler) Transition(status entity.AppointmentStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appointment, err := h.appointmentUsecase.Transition(r.Context(), mux.Vars(r)["id"], status)
		if err != nil {
			writeError(w, err, "Failed to update appointment")
			return
		}

		response.OK(w, dto.AppointmentEnvelope{Appointment: appointment})
	}
}
