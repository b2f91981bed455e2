package repository

import (
	"time"

	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	// FindActiveByPhoneDateDoctor returns a non-cancelled booking matching the
	// duplicate-detection triple, or nil.
	FindActiveByPhoneDateDoctor(db *gorm.DB, telepon string, tanggal time.Time, dokterID uuid.UUID) (*entity.Booking, error)
	Search(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error)
	Update(db *gorm.DB, booking *entity.Booking) error
}
