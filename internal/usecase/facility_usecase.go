package usecase

import (
	"context"
	"errors"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrFacilityNotFound = errors.New("facility not found")

type FacilityUsecase interface {
	CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error)
	GetFacility(ctx context.Context, id uuid.UUID) (*dto.FacilityResponse, error)
	ListFacilities(ctx context.Context) ([]dto.FacilityResponse, error)
	UpdateFacility(ctx context.Context, id uuid.UUID, req *dto.UpdateFacilityRequest) (*dto.FacilityResponse, error)
	DeleteFacility(ctx context.Context, id uuid.UUID) error
}

type facilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	facilityRepo repository.FacilityRepository
}

func NewFacilityUsecase(db *gorm.DB, log *logrus.Logger, facilityRepo repository.FacilityRepository) FacilityUsecase {
	return &facilityUsecase{
		db:           db,
		log:          log,
		facilityRepo: facilityRepo,
	}
}

func (u *facilityUsecase) CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error) {
	facility := &entity.Facility{
		Nama:      req.Nama,
		Deskripsi: req.Deskripsi,
		Gambar:    req.Gambar,
		Urutan:    req.Urutan,
	}

	if err := u.facilityRepo.Create(u.db.WithContext(ctx), facility); err != nil {
		u.log.Warnf("Failed to create facility: %+v", err)
		return nil, err
	}

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) GetFacility(ctx context.Context, id uuid.UUID) (*dto.FacilityResponse, error) {
	facility, err := u.facilityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find facility: %+v", err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) ListFacilities(ctx context.Context) ([]dto.FacilityResponse, error) {
	facilities, err := u.facilityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list facilities: %+v", err)
		return nil, err
	}

	return converter.FacilitiesToResponses(facilities), nil
}

func (u *facilityUsecase) UpdateFacility(ctx context.Context, id uuid.UUID, req *dto.UpdateFacilityRequest) (*dto.FacilityResponse, error) {
	facility, err := u.facilityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find facility: %+v", err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	if req.Nama != nil {
		facility.Nama = *req.Nama
	}
	if req.Deskripsi != nil {
		facility.Deskripsi = *req.Deskripsi
	}
	if req.Gambar != nil {
		facility.Gambar = *req.Gambar
	}
	if req.Urutan != nil {
		facility.Urutan = *req.Urutan
	}

	if err := u.facilityRepo.Update(u.db.WithContext(ctx), facility); err != nil {
		u.log.Warnf("Failed to update facility: %+v", err)
		return nil, err
	}

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) DeleteFacility(ctx context.Context, id uuid.UUID) error {
	affected, err := u.facilityRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete facility: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrFacilityNotFound
	}
	return nil
}
