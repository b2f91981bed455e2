package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"
	"go-clinic-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrDoctorNotAvailable   = errors.New("doctor not found or not accepting bookings")
	ErrDuplicateBooking     = errors.New("an active booking already exists for this phone, date and doctor")
	ErrInvalidBookingDate   = errors.New("invalid booking date format, use YYYY-MM-DD")
	ErrInvalidBookingTime   = errors.New("invalid booking time format, use HH:MM")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error)
	SearchBookings(ctx context.Context, req *dto.SearchBookingRequest) (*dto.BookingListResponse, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingUpdateResponse, error)
}

type bookingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	doctorRepo  repository.DoctorRepository
	notifier    service.BookingNotifier
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	doctorRepo repository.DoctorRepository,
	notifier service.BookingNotifier,
) BookingUsecase {
	return &bookingUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		doctorRepo:  doctorRepo,
		notifier:    notifier,
	}
}

// CreateBooking handles a public appointment submission.
//
// Flow:
// 1. Parse date/time fields
// 2. Validate doctor exists and is active
// 3. Duplicate pre-check on (telepon, tanggal, dokter) among non-cancelled bookings
// 4. Persist in PENDING with a generated booking code
// 5. Best-effort WhatsApp to the patient (result stored on the record) and to
//    the admin contact; neither failure fails the booking
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, ErrInvalidBookingDate
	}
	if _, err := time.Parse("15:04", req.Waktu); err != nil {
		return nil, ErrInvalidBookingTime
	}

	dokterID, err := uuid.Parse(req.DokterID)
	if err != nil {
		return nil, ErrDoctorNotAvailable
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), dokterID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", dokterID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsActive() {
		return nil, ErrDoctorNotAvailable
	}

	existing, err := u.bookingRepo.FindActiveByPhoneDateDoctor(u.db.WithContext(ctx), req.Telepon, tanggal, dokterID)
	if err != nil {
		u.log.Warnf("Failed duplicate check: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateBooking
	}

	booking := &entity.Booking{
		KodeBooking: generateBookingCode(tanggal),
		NamaPasien:  req.NamaPasien,
		Telepon:     req.Telepon,
		Email:       req.Email,
		NIK:         req.NIK,
		Alamat:      req.Alamat,
		Asuransi:    req.Asuransi,
		Tanggal:     tanggal,
		Waktu:       req.Waktu,
		DokterID:    dokterID,
		Keluhan:     req.Keluhan,
		Status:      entity.BookingStatusPending,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	msg := &service.BookingMessage{
		Phone:       booking.Telepon,
		NamaPasien:  booking.NamaPasien,
		KodeBooking: booking.KodeBooking,
		Tanggal:     booking.Tanggal,
		Waktu:       booking.Waktu,
		NamaDokter:  doctor.Nama,
	}

	if err := u.notifier.SendBookingConfirmation(ctx, msg); err != nil {
		u.log.Warnf("Patient notification failed for booking %s (non-fatal): %+v", booking.KodeBooking, err)
	} else {
		booking.NotifikasiTerkirim = true
		if err := u.bookingRepo.Update(u.db.WithContext(ctx), booking); err != nil {
			u.log.Warnf("Failed to record notification flag for booking %s: %+v", booking.KodeBooking, err)
		}
	}

	if err := u.notifier.SendAdminAlert(ctx, msg); err != nil {
		u.log.Warnf("Admin notification failed for booking %s (non-fatal): %+v", booking.KodeBooking, err)
	}

	booking.Dokter = *doctor
	u.log.Infof("Booking created: id=%s, code=%s, doctor=%s", booking.ID, booking.KodeBooking, doctor.Nama)
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) SearchBookings(ctx context.Context, req *dto.SearchBookingRequest) (*dto.BookingListResponse, error) {
	filter := &entity.BookingFilter{
		Status:  req.Status,
		Tanggal: req.Tanggal,
		Search:  req.Search,
		Page:    req.Page,
		Limit:   req.Limit,
	}

	bookings, total, err := u.bookingRepo.Search(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    total,
	}, nil
}

// UpdateBooking applies a partial admin update. Only fields present in the
// request are touched. A status transition into CONFIRMED sends exactly one
// confirmation with the post-update date/time/doctor; a booking that is
// already CONFIRMED is never re-notified.
func (u *bookingUsecase) UpdateBooking(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingUpdateResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	wasConfirmed := booking.IsConfirmed()

	if req.Status != nil {
		status := entity.BookingStatus(*req.Status)
		if !entity.ValidBookingStatus(status) {
			return nil, ErrInvalidBookingStatus
		}
		booking.Status = status
	}
	if req.CatatanAdmin != nil {
		booking.CatatanAdmin = *req.CatatanAdmin
	}
	if req.Tanggal != nil {
		tanggal, err := time.Parse("2006-01-02", *req.Tanggal)
		if err != nil {
			return nil, ErrInvalidBookingDate
		}
		booking.Tanggal = tanggal
	}
	if req.Waktu != nil {
		if _, err := time.Parse("15:04", *req.Waktu); err != nil {
			return nil, ErrInvalidBookingTime
		}
		booking.Waktu = *req.Waktu
	}
	if req.NIK != nil {
		booking.NIK = *req.NIK
	}
	if req.Alamat != nil {
		booking.Alamat = *req.Alamat
	}

	notified := false
	if !wasConfirmed && booking.IsConfirmed() {
		msg := &service.BookingMessage{
			Phone:       booking.Telepon,
			NamaPasien:  booking.NamaPasien,
			KodeBooking: booking.KodeBooking,
			Tanggal:     booking.Tanggal,
			Waktu:       booking.Waktu,
			NamaDokter:  booking.Dokter.Nama,
		}
		if err := u.notifier.SendBookingConfirmation(ctx, msg); err != nil {
			u.log.Warnf("Confirmation notification failed for booking %s (non-fatal): %+v", booking.KodeBooking, err)
		} else {
			notified = true
			booking.NotifikasiTerkirim = true
		}
	}

	if err := u.bookingRepo.Update(u.db.WithContext(ctx), booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", id, err)
		return nil, err
	}

	return &dto.BookingUpdateResponse{
		Booking:           converter.BookingToResponse(booking),
		NotifikasiDikirim: notified,
	}, nil
}

const bookingCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateBookingCode builds the patient-facing reference: MB-YYYYMMDD-XXX.
func generateBookingCode(tanggal time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)

	token := make([]byte, 3)
	for i, b := range randomBytes {
		token[i] = bookingCodeCharset[int(b)%len(bookingCodeCharset)]
	}

	return fmt.Sprintf("MB-%s-%s", tanggal.Format("20060102"), token)
}
