package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/response"
	"hospital-booking/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) Transition(ctx context.Context, id string, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) List(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) ListToday(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]dto.AppointmentResponse), args.Error(1)
}

type MockDoctorSearchUsecase struct {
	mock.Mock
}

func (m *MockDoctorSearchUsecase) Search(ctx context.Context, query *dto.DoctorSearchQuery) ([]dto.DoctorSearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]dto.DoctorSearchResult), args.Error(1)
}

type rejectingCaptcha struct{}

func (rejectingCaptcha) Verify(ctx context.Context, token string) bool { return false }

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAppointmentHandler_CreateAppointment(t *testing.T) {
	t.Run("books with the decoded request", func(t *testing.T) {
		uc := new(MockAppointmentUsecase)
		h := NewAppointmentHandler(uc, validator.NewValidator())

		uc.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateAppointmentRequest) bool {
			return req.UserID == "u1" && req.DoctorID == "d1" && req.PreferredTime == "evening"
		})).Return(&dto.AppointmentResponse{ID: "a1", Status: string(entity.AppointmentStatusBooked)}, nil)

		body, _ := json.Marshal(map[string]string{
			"userId":        "u1",
			"hospitalId":    "h1",
			"doctorId":      "d1",
			"preferredTime": "evening",
		})
		w := httptest.NewRecorder()
		h.CreateAppointment(w, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusOK, w.Code)
		var out dto.AppointmentEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equal(t, "Booked", out.Appointment.Status)
		uc.AssertExpectations(t)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		uc := new(MockAppointmentUsecase)
		h := NewAppointmentHandler(uc, validator.NewValidator())

		w := httptest.NewRecorder()
		h.CreateAppointment(w, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString("{not json")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, w).Error)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unresolved reference is a 404", func(t *testing.T) {
		uc := new(MockAppointmentUsecase)
		h := NewAppointmentHandler(uc, validator.NewValidator())
		uc.On("Create", mock.Anything, mock.Anything).Return(nil, usecase.ErrReferenceNotFound)

		body, _ := json.Marshal(map[string]string{"userId": "u1", "hospitalId": "h1", "doctorId": "d1"})
		w := httptest.NewRecorder()
		h.CreateAppointment(w, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Referenced record not found", decodeError(t, w).Error)
	})
}

func TestAppointmentHandler_Transition(t *testing.T) {
	t.Run("passes the path id and target status", func(t *testing.T) {
		uc := new(MockAppointmentUsecase)
		h := NewAppointmentHandler(uc, validator.NewValidator())
		uc.On("Transition", mock.Anything, "a1", entity.AppointmentStatusInConsultation).
			Return(&dto.AppointmentResponse{ID: "a1", Status: string(entity.AppointmentStatusInConsultation)}, nil)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/appointments/a1/get-in", nil), map[string]string{"id": "a1"})
		w := httptest.NewRecorder()
		h.Transition(entity.AppointmentStatusInConsultation)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("unexpected failure is a 500 with detail", func(t *testing.T) {
		uc := new(MockAppointmentUsecase)
		h := NewAppointmentHandler(uc, validator.NewValidator())
		uc.On("Transition", mock.Anything, "a1", entity.AppointmentStatusCancelled).Return(nil, errors.New("disk full"))

		req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/appointments/a1/cancel", nil), map[string]string{"id": "a1"})
		w := httptest.NewRecorder()
		h.Transition(entity.AppointmentStatusCancelled)(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "Failed to update appointment", body.Error)
		assert.Equal(t, "disk full", body.Detail)
	})
}

func TestAppointmentHandler_ListAppointments(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())
	uc.On("List", mock.Anything, &dto.AppointmentListQuery{HospitalID: "h1", DoctorID: "d1"}).
		Return([]dto.AppointmentResponse{}, nil)

	w := httptest.NewRecorder()
	h.ListAppointments(w, httptest.NewRequest(http.MethodGet, "/api/appointments?hospitalId=h1&doctorId=d1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"appointments":[]}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestDoctorHandler_SearchDoctors(t *testing.T) {
	t.Run("uses coordinates when both parse", func(t *testing.T) {
		uc := new(MockDoctorSearchUsecase)
		h := NewDoctorHandler(nil, uc, validator.NewValidator())
		uc.On("Search", mock.Anything, mock.MatchedBy(func(q *dto.DoctorSearchQuery) bool {
			return q.Specialization == "ENT" && q.UserLat != nil && *q.UserLat == 28.61 && *q.UserLng == 77.21
		})).Return([]dto.DoctorSearchResult{}, nil)

		w := httptest.NewRecorder()
		h.SearchDoctors(w, httptest.NewRequest(http.MethodGet, "/api/doctors/search?specialization=ENT&userLat=28.61&userLng=77.21", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("ignores a lone or garbled coordinate", func(t *testing.T) {
		uc := new(MockDoctorSearchUsecase)
		h := NewDoctorHandler(nil, uc, validator.NewValidator())
		uc.On("Search", mock.Anything, mock.MatchedBy(func(q *dto.DoctorSearchQuery) bool {
			return q.UserLat == nil && q.UserLng == nil
		})).Return([]dto.DoctorSearchResult{}, nil)

		w := httptest.NewRecorder()
		h.SearchDoctors(w, httptest.NewRequest(http.MethodGet, "/api/doctors/search?userLat=abc&userLng=77.2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})
}

func TestDoctorHandler_SearchDoctors_DropsUnusableCoordinates(t *testing.T) {
	queries := []string{
		"userLat=NaN&userLng=77.2",
		"userLat=28.6&userLng=Inf",
		"userLat=-Inf&userLng=77.2",
		"userLat=91&userLng=77.2",
		"userLat=28.6&userLng=-180.5",
	}

	for _, raw := range queries {
		t.Run(raw, func(t *testing.T) {
			uc := new(MockDoctorSearchUsecase)
			h := NewDoctorHandler(nil, uc, validator.NewValidator())
			uc.On("Search", mock.Anything, mock.MatchedBy(func(q *dto.DoctorSearchQuery) bool {
				return q.UserLat == nil && q.UserLng == nil
			})).Return([]dto.DoctorSearchResult{}, nil)

			w := httptest.NewRecorder()
			h.SearchDoctors(w, httptest.NewRequest(http.MethodGet, "/api/doctors/search?"+raw, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestParseCoordinate_AcceptsBounds(t *testing.T) {
	v, ok := parseCoordinate("-90", 90)
	assert.True(t, ok)
	assert.Equal(t, -90.0, v)

	v, ok = parseCoordinate("180", 180)
	assert.True(t, ok)
	assert.Equal(t, 180.0, v)
}

func TestAuthHandler_RejectsFailedCaptcha(t *testing.T) {
	h := NewAuthHandler(nil, validator.NewValidator(), rejectingCaptcha{})

	body, _ := json.Marshal(map[string]string{"email": "a@b.co", "password": "x", "recaptchaToken": "bad"})
	w := httptest.NewRecorder()
	h.LoginUser(w, httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBuffer(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "reCAPTCHA verification failed", decodeError(t, w).Error)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{usecase.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already registered"},
		{usecase.ErrMissingIDs, http.StatusBadRequest, "Missing required fields"},
		{usecase.ErrInvalidStatus, http.StatusBadRequest, "Invalid appointment status"},
		{usecase.ErrInvalidDateFormat, http.StatusBadRequest, "Invalid date format"},
		{usecase.ErrPromptRequired, http.StatusBadRequest, "Prompt is required"},
		{usecase.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{usecase.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
		{usecase.ErrHospitalNotFound, http.StatusNotFound, "Hospital not found"},
		{usecase.ErrDoctorNotFound, http.StatusNotFound, "Doctor not found"},
		{errors.New("boom"), http.StatusInternalServerError, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tt.err, "fallback")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w).Error)
		})
	}
}
