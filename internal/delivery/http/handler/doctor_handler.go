package handler

import (
	"math"
	"net/http"
	"strconv"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/response"
	"hospital-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	profileUsecase usecase.ProfileUsecase
	searchUsecase  usecase.DoctorSearchUsecase
	validator      *validator.CustomValidator
}

func NewDoctorHandler(profileUsecase usecase.ProfileUsecase, searchUsecase usecase.DoctorSearchUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		profileUsecase: profileUsecase,
		searchUsecase:  searchUsecase,
		validator:      validator,
	}
}

// UpdateDoctor handles PUT /api/doctors/{id}
func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDoctorRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.profileUsecase.UpdateDoctor(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Server error while updating doctor")
		return
	}

	response.OK(w, dto.DoctorEnvelope{Doctor: doctor})
}

// SearchDoctors handles GET /api/doctors/search?specialization=&userLat=&userLng=
// Unparseable coordinates are ignored and the results stay unranked.
func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.DoctorSearchQuery{
		Specialization: q.Get("specialization"),
	}

	lat, latOK := parseCoordinate(q.Get("userLat"), 90)
	lng, lngOK := parseCoordinate(q.Get("userLng"), 180)
	if latOK && lngOK {
		query.UserLat = &lat
		query.UserLng = &lng
	}

	doctors, err := h.searchUsecase.Search(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to search doctors")
		return
	}

	response.OK(w, dto.DoctorListEnvelope{Doctors: doctors})
}

// parseCoordinate accepts a finite number within [-limit, limit].
func parseCoordinate(raw string, limit float64) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return 0, false
	}
	return v, true
}
