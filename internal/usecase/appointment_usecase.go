package usecase

import (
	"context"
	"time"

	"hospital-booking/internal/converter"
	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/domain/repository"
	"hospital-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Transition(ctx context.Context, id string, status entity.AppointmentStatus) (*dto.AppointmentResponse, error)
	List(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, error)
	ListToday(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	hospitalRepo    repository.HospitalRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
	clock           Clock
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	clock Clock,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		hospitalRepo:    hospitalRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		clock:           clock,
	}
}

// Create books an appointment in the Booked state.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.UserID == "" || req.HospitalID == "" || req.DoctorID == "" {
		return nil, ErrMissingIDs
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkReferences(tx, req); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		UserID:        req.UserID,
		HospitalID:    req.HospitalID,
		DoctorID:      req.DoctorID,
		Problem:       req.Problem,
		PreferredTime: req.PreferredTime,
		Status:        entity.AppointmentStatusBooked,
		CreatedAt:     u.clock.Now().UTC(),
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrReferenceNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	actor := service.Actor{ID: appointment.UserID, Role: entity.RoleUser}
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment %s booked with doctor %s", appointment.ID, appointment.DoctorID)

	return response, nil
}

func (u *appointmentUsecase) checkReferences(tx *gorm.DB, req *dto.CreateAppointmentRequest) error {
	user, err := u.userRepo.FindByID(tx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	hospital, err := u.hospitalRepo.FindByID(tx, req.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return err
	}
	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return err
	}
	if user == nil || hospital == nil || doctor == nil {
		return ErrReferenceNotFound
	}
	return nil
}

// Transition sets the status unconditionally. Only the target is checked,
// never the current state.
func (u *appointmentUsecase) Transition(ctx context.Context, id string, status entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	if !status.IsTransitionTarget() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Status routes are unauthenticated so the change has no known actor.
	if err := u.auditService.LogUpdate(ctx, tx, service.Actor{}, entity.AuditActionAppointmentStatus, "appointment", id,
		map[string]interface{}{"status": existing.Status},
		map[string]interface{}{"status": appointment.Status},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment %s moved from %s to %s", id, existing.Status, appointment.Status)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), toFilter(query))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments), nil
}

// ListToday returns appointments created on the clock's current calendar day.
func (u *appointmentUsecase) ListToday(ctx context.Context, query *dto.AppointmentListQuery) ([]dto.AppointmentResponse, error) {
	from, to := dayBounds(u.clock.Now())

	filter := toFilter(query)
	filter.UserID = ""

	appointments, err := u.appointmentRepo.FindCreatedBetween(u.db.WithContext(ctx), filter, from.UTC(), to.UTC())
	if err != nil {
		u.log.Warnf("Failed to list today's appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments), nil
}

func toFilter(query *dto.AppointmentListQuery) entity.AppointmentFilter {
	if query == nil {
		return entity.AppointmentFilter{}
	}
	return entity.AppointmentFilter{
		UserID:     query.UserID,
		HospitalID: query.HospitalID,
		DoctorID:   query.DoctorID,
	}
}

// dayBounds returns [midnight, next midnight) in now's location.
func dayBounds(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
