package repository

import (
	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindBySlug(db *gorm.DB, slug string) (*entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindAllActive(db *gorm.DB) ([]entity.Service, error)
	// CountBySlug counts rows holding slug, excluding excludeID when non-nil.
	CountBySlug(db *gorm.DB, slug string, excludeID *uuid.UUID) (int64, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
