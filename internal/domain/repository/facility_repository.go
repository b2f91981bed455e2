package repository

import (
	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacilityRepository interface {
	Create(db *gorm.DB, facility *entity.Facility) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Facility, error)
	FindAll(db *gorm.DB) ([]entity.Facility, error)
	Update(db *gorm.DB, facility *entity.Facility) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
