package repository

import (
	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.Schedule) error
	FindByID(db *gorm.DB, id int) (*entity.Schedule, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Schedule, error)
	FindAll(db *gorm.DB) ([]entity.Schedule, error)
	FindAllActive(db *gorm.DB) ([]entity.Schedule, error)
	Update(db *gorm.DB, schedule *entity.Schedule) error
	Delete(db *gorm.DB, id int) (int64, error)
}
