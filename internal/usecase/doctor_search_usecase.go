package usecase

import (
	"context"
	"sort"
	"strings"

	"hospital-booking/internal/converter"
	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/domain/repository"
	"hospital-booking/pkg/geo"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorSearchUsecase interface {
	Search(ctx context.Context, query *dto.DoctorSearchQuery) ([]dto.DoctorSearchResult, error)
}

type doctorSearchUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorSearchUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorSearchUsecase {
	return &doctorSearchUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

// Search filters doctors by specialization substring and, when the requester's
// location is known, ranks them nearest first. Doctors with no known location
// get a null distance and are ranked after every located doctor.
func (u *doctorSearchUsecase) Search(ctx context.Context, query *dto.DoctorSearchQuery) ([]dto.DoctorSearchResult, error) {
	filter := &entity.DoctorSearchFilter{
		Specialization: strings.TrimSpace(query.Specialization),
	}

	doctors, err := u.doctorRepo.FindAllWithHospital(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	results := make([]dto.DoctorSearchResult, 0, len(doctors))
	for i := range doctors {
		results = append(results, converter.DoctorToSearchResult(&doctors[i]))
	}

	if query.UserLat == nil || query.UserLng == nil {
		return results, nil
	}

	for i := range doctors {
		lat, lng, ok := doctors[i].Coordinates()
		if !ok {
			continue
		}
		d := geo.HaversineKm(*query.UserLat, *query.UserLng, lat, lng)
		results[i].DistanceKm = &d
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].DistanceKm, results[j].DistanceKm
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a < *b
	})

	return results, nil
}
