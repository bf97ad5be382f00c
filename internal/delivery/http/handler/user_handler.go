package handler

import (
	"net/http"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/response"
	"hospital-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewUserHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.profileUsecase.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get user")
		return
	}

	response.OK(w, dto.UserEnvelope{User: user})
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	user, err := h.profileUsecase.UpdateUser(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Server error while updating user")
		return
	}

	response.OK(w, dto.UserEnvelope{User: user})
}
