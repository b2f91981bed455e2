package repository

import (
	"errors"
	"time"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Dokter").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// FindActiveByPhoneDateDoctor is the advisory duplicate pre-check; the
// partial unique index on the table is the authoritative guard.
func (r *bookingRepository) FindActiveByPhoneDateDoctor(db *gorm.DB, telepon string, tanggal time.Time, dokterID uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("telepon = ? AND tanggal = ? AND dokter_id = ? AND status != ?",
		telepon, tanggal, dokterID, entity.BookingStatusCancelled).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Search(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	query := db.Model(&entity.Booking{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Tanggal != "" {
		query = query.Where("tanggal = ?", filter.Tanggal)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("nama_pasien ILIKE ? OR telepon ILIKE ? OR kode_booking ILIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var bookings []entity.Booking
	err := query.Preload("Dokter").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *bookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	// Omit the preloaded doctor so Save only touches the booking row.
	return db.Omit("Dokter").Save(booking).Error
}
