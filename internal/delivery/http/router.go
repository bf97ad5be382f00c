package http

import (
	"net/http"
	"time"

	"hospital-booking/internal/delivery/http/handler"
	"hospital-booking/internal/delivery/http/middleware"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	hospitalHandler    *handler.HospitalHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	firstAidHandler    *handler.FirstAidHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
	metricsGatherer    prometheus.Gatherer
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	hospitalHandler *handler.HospitalHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	firstAidHandler *handler.FirstAidHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	metricsGatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		hospitalHandler:    hospitalHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		firstAidHandler:    firstAidHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		metricsMiddleware:  metricsMiddleware,
		metricsGatherer:    metricsGatherer,
	}
}

func (r *Router) Setup() http.Handler {
	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Handle("/metrics", promhttp.HandlerFor(r.metricsGatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Users
	api.HandleFunc("/users/register", r.authHandler.RegisterUser).Methods(http.MethodPost)
	api.HandleFunc("/users/login", r.authHandler.LoginUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)

	// Hospitals
	api.HandleFunc("/hospitals/register", r.authHandler.RegisterHospital).Methods(http.MethodPost)
	api.HandleFunc("/hospitals/login", r.authHandler.LoginHospital).Methods(http.MethodPost)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.hospitalHandler.UpdateHospital).Methods(http.MethodPut)

	// Doctors
	api.HandleFunc("/doctors/search", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/today", r.appointmentHandler.ListTodayAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Transition(entity.AppointmentStatusCancelled)).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/get-in", r.appointmentHandler.Transition(entity.AppointmentStatusInConsultation)).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Transition(entity.AppointmentStatusCompleted)).Methods(http.MethodPut)

	// First aid
	api.HandleFunc("/firstaid", r.firstAidHandler.Ask).Methods(http.MethodPost)

	// Sessions (protected)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(r.authMiddleware.Authenticate)
	sessions.HandleFunc("/current", r.authHandler.CurrentSession).Methods(http.MethodGet)
	sessions.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", "")
	})

	// CORS wraps the router so preflights never hit the method matcher.
	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.OK(w, map[string]interface{}{
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
