package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/response"
	"hospital-booking/pkg/validator"
)

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// bind decodes and validates a request body, writing the 400 itself on failure.
func bind(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	if err := decodeJSON(r, dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	if err := v.Validate(dst); err != nil {
		message, detail := v.Summarize(err)
		response.ValidationError(w, message, detail)
		return false
	}
	return true
}

// writeError maps usecase errors onto the API error shape. Anything unknown
// is a 500 carrying fallback as its message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		response.BadRequest(w, "Email already registered")
	case errors.Is(err, usecase.ErrMissingIDs):
		response.ValidationError(w, "Missing required fields", err.Error())
	case errors.Is(err, usecase.ErrInvalidStatus):
		response.BadRequest(w, "Invalid appointment status")
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.ValidationError(w, "Invalid date format", err.Error())
	case errors.Is(err, usecase.ErrPromptRequired):
		response.BadRequest(w, "Prompt is required")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid credentials")
	case errors.Is(err, usecase.ErrInvalidToken):
		response.Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrReferenceNotFound):
		response.Error(w, http.StatusNotFound, "Referenced record not found", err.Error())
	default:
		response.InternalServerError(w, fallback, err)
	}
}
