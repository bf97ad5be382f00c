package usecase

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"hospital-booking/config"
	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/infrastructure/database"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/service"
	"hospital-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

type testEnv struct {
	db           *gorm.DB
	sessions     service.SessionStore
	auth         AuthUsecase
	profile      ProfileUsecase
	search       DoctorSearchUsecase
	appointments AppointmentUsecase
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
		DB:  config.DBConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")},
	}
	db, err := database.NewConnection(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, testNow)
}

func newTestEnvAt(t *testing.T, now time.Time) *testEnv {
	t.Helper()
	db := newTestDB(t)
	log := quietLogger()
	clock := FixedClock(now)

	userRepo := repository.NewUserRepository()
	hospitalRepo := repository.NewHospitalRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	sessions := service.NewMemorySessionStore()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	return &testEnv{
		db:           db,
		sessions:     sessions,
		auth:         NewAuthUsecase(db, log, userRepo, hospitalRepo, doctorRepo, auditService, jwtService, sessions, clock),
		profile:      NewProfileUsecase(db, log, userRepo, hospitalRepo, doctorRepo, auditService, clock),
		search:       NewDoctorSearchUsecase(db, log, doctorRepo),
		appointments: NewAppointmentUsecase(db, log, appointmentRepo, userRepo, hospitalRepo, doctorRepo, auditService, clock),
	}
}

func ptr[T any](v T) *T { return &v }

func (e *testEnv) registerUser(t *testing.T, email string) *dto.UserResponse {
	t.Helper()
	user, err := e.auth.RegisterUser(context.Background(), &dto.RegisterUserRequest{
		Name:     "Asha",
		Email:    email,
		Password: "secret1",
		Mobile:   "9999999999",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) registerHospital(t *testing.T, email, specialization string, lat, lng *float64) *dto.HospitalEnvelope {
	t.Helper()
	env, err := e.auth.RegisterHospital(context.Background(), &dto.RegisterHospitalRequest{
		Name:                 "Clinic " + email,
		Email:                email,
		Password:             "secret1",
		Latitude:             lat,
		Longitude:            lng,
		DoctorName:           "Dr. " + specialization,
		DoctorSpecialization: specialization,
	})
	require.NoError(t, err)
	return env
}

func (e *testEnv) auditActions(t *testing.T, actorID string) []string {
	t.Helper()
	logs, err := repository.NewAuditLogRepository().FindByActorID(e.db, actorID)
	require.NoError(t, err)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	return actions
}

func (e *testEnv) backdate(t *testing.T, appointmentID string, at time.Time) {
	t.Helper()
	require.NoError(t, e.db.Model(&entity.Appointment{}).Where("id = ?", appointmentID).Update("created_at", at.UTC()).Error)
}
