package usecase

import (
	"context"

	"hospital-booking/internal/converter"
	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/domain/repository"
	"hospital-booking/internal/service"
	"hospital-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordHashCost = 10

type AuthUsecase interface {
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	LoginUser(ctx context.Context, req *dto.LoginRequest) (*dto.UserLoginResponse, error)
	RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.HospitalEnvelope, error)
	LoginHospital(ctx context.Context, req *dto.LoginRequest) (*dto.HospitalLoginResponse, error)
	CurrentSession(ctx context.Context, role, subjectID string) (*dto.SessionResponse, error)
	Logout(ctx context.Context, role, subjectID, tokenID string) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	sessions     service.SessionStore
	clock        Clock
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	sessions service.SessionStore,
	clock Clock,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		jwtService:   jwtService,
		sessions:     sessions,
		clock:        clock,
	}
}

func (u *authUsecase) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.userRepo.FindByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Mobile,
		PasswordHash: string(hashedPassword),
		Height:       req.Height,
		Weight:       req.Weight,
		DOB:          req.DOB,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if err := user.RecomputeAge(u.clock.Now()); err != nil {
		return nil, ErrInvalidDateFormat
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	response := converter.UserToResponse(user)
	actor := service.Actor{ID: user.ID, Role: entity.RoleUser}
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionUserRegister, "user", user.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("User %s registered", user.ID)

	return response, nil
}

func (u *authUsecase) LoginUser(ctx context.Context, req *dto.LoginRequest) (*dto.UserLoginResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresIn, err := u.issueSession(ctx, entity.RoleUser, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.UserLoginResponse{
		User:      converter.UserToResponse(user),
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// RegisterHospital creates the hospital and its single doctor atomically.
// The doctor starts at the hospital's location.
func (u *authUsecase) RegisterHospital(ctx context.Context, req *dto.RegisterHospitalRequest) (*dto.HospitalEnvelope, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.hospitalRepo.FindByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find hospital by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	hospital := &entity.Hospital{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Emergency:    req.Emergency,
		MorningFrom:  deref(req.MorningFromValue()),
		MorningTo:    deref(req.MorningToValue()),
		EveningFrom:  deref(req.EveningFromValue()),
		EveningTo:    deref(req.EveningToValue()),
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	if err := u.hospitalRepo.Create(tx, hospital); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		HospitalID:     hospital.ID,
		Name:           req.DoctorName,
		Qualification:  req.DoctorQualification,
		Specialization: req.DoctorSpecialization,
		Description:    req.DoctorDescription,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	envelope := converter.HospitalToEnvelope(hospital, doctor)
	actor := service.Actor{ID: hospital.ID, Role: entity.RoleHospital}
	if err := u.auditService.LogCreate(ctx, tx, actor, entity.AuditActionHospitalRegister, "hospital", hospital.ID, envelope); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Hospital %s registered with doctor %s", hospital.ID, doctor.ID)

	return envelope, nil
}

func (u *authUsecase) LoginHospital(ctx context.Context, req *dto.LoginRequest) (*dto.HospitalLoginResponse, error) {
	db := u.db.WithContext(ctx)

	hospital, err := u.hospitalRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find hospital by email: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hospital.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	doctor, err := u.doctorRepo.FindByHospitalID(db, hospital.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by hospital ID: %+v", err)
		return nil, err
	}

	token, expiresIn, err := u.issueSession(ctx, entity.RoleHospital, hospital.ID)
	if err != nil {
		return nil, err
	}

	return &dto.HospitalLoginResponse{
		Hospital:  converter.HospitalToResponse(hospital, doctor),
		Doctor:    converter.DoctorToResponse(doctor),
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// CurrentSession confirms the token's account still exists.
func (u *authUsecase) CurrentSession(ctx context.Context, role, subjectID string) (*dto.SessionResponse, error) {
	db := u.db.WithContext(ctx)

	var found bool
	switch role {
	case entity.RoleUser:
		user, err := u.userRepo.FindByID(db, subjectID)
		if err != nil {
			u.log.Warnf("Failed to find user by ID: %+v", err)
			return nil, err
		}
		found = user != nil
	case entity.RoleHospital:
		hospital, err := u.hospitalRepo.FindByID(db, subjectID)
		if err != nil {
			u.log.Warnf("Failed to find hospital by ID: %+v", err)
			return nil, err
		}
		found = hospital != nil
	}
	if !found {
		return nil, ErrInvalidToken
	}

	return &dto.SessionResponse{Role: role, SubjectID: subjectID}, nil
}

func (u *authUsecase) Logout(ctx context.Context, role, subjectID, tokenID string) error {
	if err := u.sessions.Delete(ctx, role, subjectID, tokenID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) issueSession(ctx context.Context, role, subjectID string) (string, int64, error) {
	token, tokenID, err := u.jwtService.GenerateAccessToken(subjectID, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return "", 0, err
	}

	if err := u.sessions.Save(ctx, role, subjectID, tokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return "", 0, err
	}

	return token, int64(u.jwtService.GetAccessExpiry().Seconds()), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
