package handler

import (
	"net/http"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/response"
)

type FirstAidHandler struct {
	firstAidUsecase usecase.FirstAidUsecase
}

func NewFirstAidHandler(firstAidUsecase usecase.FirstAidUsecase) *FirstAidHandler {
	return &FirstAidHandler{firstAidUsecase: firstAidUsecase}
}

// Ask handles POST /api/firstaid
func (h *FirstAidHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req dto.FirstAidRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	reply, err := h.firstAidUsecase.Ask(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to process first-aid request")
		return
	}

	response.OK(w, reply)
}
