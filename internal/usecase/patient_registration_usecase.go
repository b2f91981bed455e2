package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"
	"go-clinic-management/pkg/nik"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingHasNoNIK = errors.New("booking has no NIK to register the patient with")
	ErrInvalidNIK      = errors.New("booking NIK cannot be parsed")
)

// Defaults for pasien columns the booking form does not collect. They match
// the placeholder values the hospital system expects on self-registration.
const (
	defaultSttsNikah  = "BELUM MENIKAH"
	defaultGolDarah   = "-"
	defaultAgama      = "-"
	defaultPendidikan = "-"
	defaultKeluarga   = "SAUDARA"
	defaultKdPj       = "UMUM"
	defaultRegionCode = 1
)

type PatientRegistrationUsecase interface {
	// CheckPatient reports whether the booking's NIK is already registered in
	// the hospital system.
	CheckPatient(ctx context.Context, bookingID uuid.UUID) (*dto.PatientStatusResponse, error)
	// RegisterPatient creates the pasien record when absent and returns the
	// medical record number either way.
	RegisterPatient(ctx context.Context, bookingID uuid.UUID, req *dto.RegisterPatientRequest) (*dto.PatientRegistrationResponse, error)
	// ListSIMRSDoctors and ListSIMRSClinics expose hospital-system reference
	// data for the admin dashboard.
	ListSIMRSDoctors(ctx context.Context) ([]dto.SIMRSDoctorResponse, error)
	ListSIMRSClinics(ctx context.Context) ([]dto.SIMRSClinicResponse, error)
}

type patientRegistrationUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	patientRepo repository.SIMRSPatientRepository
	now         func() time.Time
}

func NewPatientRegistrationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	patientRepo repository.SIMRSPatientRepository,
) PatientRegistrationUsecase {
	return &patientRegistrationUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

func (u *patientRegistrationUsecase) CheckPatient(ctx context.Context, bookingID uuid.UUID) (*dto.PatientStatusResponse, error) {
	booking, err := u.loadBookingWithNIK(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByNIK(ctx, booking.NIK)
	if err != nil {
		u.log.Warnf("Failed SIMRS patient lookup for NIK %s: %+v", booking.NIK, err)
		return nil, err
	}

	resp := &dto.PatientStatusResponse{Terdaftar: patient != nil}
	if patient != nil {
		resp.NoRkmMedis = patient.NoRkmMedis
		resp.NmPasien = patient.NmPasien
	}
	return resp, nil
}

// RegisterPatient is idempotent for an already-registered NIK. The create
// path reads the current maximum record number and increments it without a
// lock; see the schema's unique index on no_ktp for the authoritative guard.
func (u *patientRegistrationUsecase) RegisterPatient(ctx context.Context, bookingID uuid.UUID, req *dto.RegisterPatientRequest) (*dto.PatientRegistrationResponse, error) {
	booking, err := u.loadBookingWithNIK(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	existing, err := u.patientRepo.FindByNIK(ctx, booking.NIK)
	if err != nil {
		u.log.Warnf("Failed SIMRS patient lookup for NIK %s: %+v", booking.NIK, err)
		return nil, err
	}
	if existing != nil {
		return &dto.PatientRegistrationResponse{
			NoRkmMedis:     existing.NoRkmMedis,
			SudahTerdaftar: true,
		}, nil
	}

	birthDate, gender, err := u.resolveIdentity(booking, req)
	if err != nil {
		return nil, err
	}

	maxNumber, err := u.patientRepo.MaxMedicalRecordNumber(ctx)
	if err != nil {
		u.log.Warnf("Failed to read max medical record number: %+v", err)
		return nil, err
	}
	recordNumber := fmt.Sprintf("%06d", maxNumber+1)

	now := u.now()
	patient := &entity.Patient{
		NoRkmMedis:   recordNumber,
		NmPasien:     strings.ToUpper(booking.NamaPasien),
		NoKTP:        booking.NIK,
		JK:           gender,
		TmpLahir:     req.TempatLahir,
		TglLahir:     birthDate,
		NmIbu:        req.NamaIbu,
		Alamat:       booking.Alamat,
		GolDarah:     defaultGolDarah,
		Pekerjaan:    req.Pekerjaan,
		SttsNikah:    defaultSttsNikah,
		Agama:        defaultAgama,
		TglDaftar:    now,
		NoTlp:        booking.Telepon,
		Umur:         fmt.Sprintf("%d Th", nik.Age(birthDate, now)),
		Pnd:          defaultPendidikan,
		Keluarga:     defaultKeluarga,
		NamaKeluarga: strings.ToUpper(booking.NamaPasien),
		KdPj:         defaultKdPj,
		KdKel:        defaultRegionCode,
		KdKec:        defaultRegionCode,
		KdKab:        defaultRegionCode,
		KdProp:       defaultRegionCode,
		SukuBangsa:   defaultRegionCode,
		BahasaPasien: defaultRegionCode,
		CacatFisik:   defaultRegionCode,
		Email:        booking.Email,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create SIMRS patient %s: %+v", recordNumber, err)
		return nil, err
	}

	u.log.Infof("Patient registered in SIMRS: no_rkm_medis=%s, booking=%s", recordNumber, booking.KodeBooking)
	return &dto.PatientRegistrationResponse{NoRkmMedis: recordNumber}, nil
}

func (u *patientRegistrationUsecase) ListSIMRSDoctors(ctx context.Context) ([]dto.SIMRSDoctorResponse, error) {
	doctors, err := u.patientRepo.ListDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to list hospital doctors: %+v", err)
		return nil, err
	}
	return converter.SIMRSDoctorsToResponses(doctors), nil
}

func (u *patientRegistrationUsecase) ListSIMRSClinics(ctx context.Context) ([]dto.SIMRSClinicResponse, error) {
	clinics, err := u.patientRepo.ListClinics(ctx)
	if err != nil {
		u.log.Warnf("Failed to list hospital clinics: %+v", err)
		return nil, err
	}
	return converter.SIMRSClinicsToResponses(clinics), nil
}

func (u *patientRegistrationUsecase) loadBookingWithNIK(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.NIK == "" {
		return nil, ErrBookingHasNoNIK
	}
	return booking, nil
}

// resolveIdentity prefers explicitly supplied birth data over the NIK-derived
// values.
func (u *patientRegistrationUsecase) resolveIdentity(booking *entity.Booking, req *dto.RegisterPatientRequest) (time.Time, string, error) {
	if req.TglLahir != "" {
		birth, err := time.Parse("2006-01-02", req.TglLahir)
		if err != nil {
			return time.Time{}, "", ErrInvalidBookingDate
		}
		gender := req.JK
		if gender == "" {
			if id, err := nik.Parse(booking.NIK); err == nil {
				gender = id.Gender
			} else {
				gender = nik.GenderMale
			}
		}
		return birth, gender, nil
	}

	id, err := nik.Parse(booking.NIK)
	if err != nil {
		return time.Time{}, "", ErrInvalidNIK
	}
	return id.BirthDate, id.Gender, nil
}
