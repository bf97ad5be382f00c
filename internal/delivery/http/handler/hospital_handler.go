package handler

import (
	"net/http"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/response"
	"hospital-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewHospitalHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospital, err := h.profileUsecase.GetHospital(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get hospital")
		return
	}

	response.OK(w, hospital)
}

// UpdateHospital handles PUT /api/hospitals/{id}
func (h *HospitalHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateHospitalRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	hospital, err := h.profileUsecase.UpdateHospital(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Server error while updating hospital")
		return
	}

	response.OK(w, hospital)
}
