package handler

import (
	"context"
	"net/http"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/delivery/http/middleware"
	"hospital-booking/internal/usecase"
	"hospital-booking/pkg/response"
	"hospital-booking/pkg/validator"
)

// CaptchaVerifier checks a bot-challenge token.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) bool
}

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	captcha     CaptchaVerifier
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, captcha CaptchaVerifier) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		captcha:     captcha,
	}
}

func (h *AuthHandler) verifyCaptcha(w http.ResponseWriter, r *http.Request, token string) bool {
	if !h.captcha.Verify(r.Context(), token) {
		response.BadRequest(w, "reCAPTCHA verification failed")
		return false
	}
	return true
}

// RegisterUser handles POST /api/users/register
func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !h.verifyCaptcha(w, r, req.RecaptchaToken) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		message, detail := h.validator.Summarize(err)
		response.ValidationError(w, message, detail)
		return
	}

	user, err := h.authUsecase.RegisterUser(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Server error while registering user")
		return
	}

	response.OK(w, dto.UserEnvelope{User: user})
}

// LoginUser handles POST /api/users/login
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !h.verifyCaptcha(w, r, req.RecaptchaToken) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		message, detail := h.validator.Summarize(err)
		response.ValidationError(w, message, detail)
		return
	}

	login, err := h.authUsecase.LoginUser(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Server error while logging in")
		return
	}

	response.OK(w, login)
}

// RegisterHospital handles POST /api/hospitals/register
func (h *AuthHandler) RegisterHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterHospitalRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !h.verifyCaptcha(w, r, req.RecaptchaToken) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		message, detail := h.validator.Summarize(err)
		response.ValidationError(w, message, detail)
		return
	}

	created, err := h.authUsecase.RegisterHospital(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Server error while registering hospital")
		return
	}

	response.OK(w, created)
}

// LoginHospital handles POST /api/hospitals/login
func (h *AuthHandler) LoginHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !h.verifyCaptcha(w, r, req.RecaptchaToken) {
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		message, detail := h.validator.Summarize(err)
		response.ValidationError(w, message, detail)
		return
	}

	login, err := h.authUsecase.LoginHospital(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Server error while logging in hospital")
		return
	}

	response.OK(w, login)
}

// CurrentSession handles GET /api/sessions/current
func (h *AuthHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	current, err := h.authUsecase.CurrentSession(r.Context(), session.Role, session.SubjectID)
	if err != nil {
		writeError(w, err, "Failed to get session")
		return
	}

	response.OK(w, current)
}

// Logout handles POST /api/sessions/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), session.Role, session.SubjectID, session.TokenID); err != nil {
		response.InternalServerError(w, "Failed to logout", err)
		return
	}

	response.OK(w, map[string]bool{"ok": true})
}
