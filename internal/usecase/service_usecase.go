package usecase

import (
	"context"
	"errors"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"
	"go-clinic-management/pkg/slug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetServiceBySlug(ctx context.Context, slugValue string) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context) ([]dto.ServiceResponse, error)
	ListActiveServices(ctx context.Context) ([]dto.ServiceResponse, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type serviceUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
}

func NewServiceUsecase(db *gorm.DB, log *logrus.Logger, serviceRepo repository.ServiceRepository) ServiceUsecase {
	return &serviceUsecase{
		db:          db,
		log:         log,
		serviceRepo: serviceRepo,
	}
}

// uniqueSlug derives a slug from name and appends a timestamp suffix when the
// plain form is already taken by another row.
func (u *serviceUsecase) uniqueSlug(db *gorm.DB, name string, excludeID *uuid.UUID) (string, error) {
	candidate := slug.Make(name)
	count, err := u.serviceRepo.CountBySlug(db, candidate, excludeID)
	if err != nil {
		return "", err
	}
	if count > 0 {
		candidate = slug.WithSuffix(candidate)
	}
	return candidate, nil
}

func (u *serviceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	db := u.db.WithContext(ctx)

	slugValue, err := u.uniqueSlug(db, req.Nama, nil)
	if err != nil {
		u.log.Warnf("Failed to check slug uniqueness: %+v", err)
		return nil, err
	}

	service := &entity.Service{
		Nama:      req.Nama,
		Slug:      slugValue,
		Deskripsi: req.Deskripsi,
		Harga:     req.Harga,
		Urutan:    req.Urutan,
		Aktif:     req.Aktif,
	}
	if service.Aktif == nil {
		active := true
		service.Aktif = &active
	}

	if err := u.serviceRepo.Create(db, service); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) GetServiceBySlug(ctx context.Context, slugValue string) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindBySlug(u.db.WithContext(ctx), slugValue)
	if err != nil {
		u.log.Warnf("Failed to find service by slug: %+v", err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}

	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) ListActiveServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active services: %+v", err)
		return nil, err
	}

	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	db := u.db.WithContext(ctx)

	service, err := u.serviceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if req.Nama != nil && *req.Nama != service.Nama {
		slugValue, err := u.uniqueSlug(db, *req.Nama, &service.ID)
		if err != nil {
			u.log.Warnf("Failed to check slug uniqueness: %+v", err)
			return nil, err
		}
		service.Nama = *req.Nama
		service.Slug = slugValue
	}
	if req.Deskripsi != nil {
		service.Deskripsi = *req.Deskripsi
	}
	if req.Harga != nil {
		service.Harga = *req.Harga
	}
	if req.Urutan != nil {
		service.Urutan = *req.Urutan
	}
	if req.Aktif != nil {
		service.Aktif = req.Aktif
	}

	if err := u.serviceRepo.Update(db, service); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) DeleteService(ctx context.Context, id uuid.UUID) error {
	affected, err := u.serviceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
