package usecase

import (
	"context"

	"hospital-booking/internal/converter"
	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/domain/repository"
	"hospital-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileUsecase interface {
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	GetHospital(ctx context.Context, id string) (*dto.HospitalEnvelope, error)
	UpdateHospital(ctx context.Context, id string, req *dto.UpdateHospitalRequest) (*dto.HospitalEnvelope, error)
	UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
}

type profileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	clock        Clock
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	clock Clock,
) ProfileUsecase {
	return &profileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		clock:        clock,
	}
}

func (u *profileUsecase) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// UpdateUser merges the provided fields and recomputes age from the date of birth.
func (u *profileUsecase) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	oldValue := converter.UserToResponse(user)

	if req.Email != nil && *req.Email != user.Email {
		other, err := u.userRepo.FindByEmail(tx, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to find user by email: %+v", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}

	assign(&user.Name, req.Name)
	assign(&user.Mobile, req.Mobile)
	assign(&user.Address, req.Address)
	assignPtr(&user.Height, req.Height)
	assignPtr(&user.Weight, req.Weight)
	assignPtr(&user.Latitude, req.Latitude)
	assignPtr(&user.Longitude, req.Longitude)
	assign(&user.DOB, req.DOB)

	if err := user.RecomputeAge(u.clock.Now()); err != nil {
		return nil, ErrInvalidDateFormat
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	newValue := converter.UserToResponse(user)
	actor := service.Actor{ID: user.ID, Role: entity.RoleUser}
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionProfileUpdate, "user", user.ID, oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *profileUsecase) GetHospital(ctx context.Context, id string) (*dto.HospitalEnvelope, error) {
	db := u.db.WithContext(ctx)

	hospital, err := u.hospitalRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	doctor, err := u.doctorRepo.FindByHospitalID(db, hospital.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by hospital ID: %+v", err)
		return nil, err
	}

	return converter.HospitalToEnvelope(hospital, doctor), nil
}

func (u *profileUsecase) UpdateHospital(ctx context.Context, id string, req *dto.UpdateHospitalRequest) (*dto.HospitalEnvelope, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hospital, err := u.hospitalRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find hospital by ID: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}
	oldValue := converter.HospitalToResponse(hospital, nil)

	if req.Email != nil && *req.Email != hospital.Email {
		other, err := u.hospitalRepo.FindByEmail(tx, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to find hospital by email: %+v", err)
			return nil, err
		}
		if other != nil {
			return nil, ErrEmailAlreadyExists
		}
		hospital.Email = *req.Email
	}

	assign(&hospital.Name, req.Name)
	assign(&hospital.Address, req.Address)
	assignPtr(&hospital.Latitude, req.Latitude)
	assignPtr(&hospital.Longitude, req.Longitude)
	assign(&hospital.MorningFrom, req.MorningFromValue())
	assign(&hospital.MorningTo, req.MorningToValue())
	assign(&hospital.EveningFrom, req.EveningFromValue())
	assign(&hospital.EveningTo, req.EveningToValue())
	if req.Emergency != nil {
		hospital.Emergency = *req.Emergency
	}

	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update hospital: %+v", err)
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByHospitalID(tx, hospital.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by hospital ID: %+v", err)
		return nil, err
	}

	actor := service.Actor{ID: hospital.ID, Role: entity.RoleHospital}
	newValue := converter.HospitalToResponse(hospital, nil)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionHospitalUpdate, "hospital", hospital.ID, oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HospitalToEnvelope(hospital, doctor), nil
}

func (u *profileUsecase) UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	oldValue := converter.DoctorToResponse(doctor)

	assign(&doctor.Name, req.Name)
	assign(&doctor.Qualification, req.Qualification)
	assign(&doctor.Specialization, req.Specialization)
	assign(&doctor.Description, req.Description)
	assignPtr(&doctor.Latitude, req.Latitude)
	assignPtr(&doctor.Longitude, req.Longitude)

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	actor := service.Actor{ID: doctor.HospitalID, Role: entity.RoleHospital}
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionDoctorUpdate, "doctor", doctor.ID, oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// assign overwrites dst when src is provided. A JSON null decodes to nil and
// so leaves the stored value alone.
func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func assignPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
