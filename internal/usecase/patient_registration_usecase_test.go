package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/pkg/nik"

	"github.com/google/uuid"
)

type fakeSIMRSRepo struct {
	patients  map[string]*entity.Patient
	maxNumber int
	created   []*entity.Patient
}

func newFakeSIMRSRepo() *fakeSIMRSRepo {
	return &fakeSIMRSRepo{patients: make(map[string]*entity.Patient)}
}

func (f *fakeSIMRSRepo) FindByNIK(ctx context.Context, nikValue string) (*entity.Patient, error) {
	return f.patients[nikValue], nil
}
func (f *fakeSIMRSRepo) MaxMedicalRecordNumber(ctx context.Context) (int, error) {
	return f.maxNumber, nil
}
func (f *fakeSIMRSRepo) Create(ctx context.Context, patient *entity.Patient) error {
	f.created = append(f.created, patient)
	f.patients[patient.NoKTP] = patient
	return nil
}
func (f *fakeSIMRSRepo) ListDoctors(ctx context.Context) ([]entity.SIMRSDoctor, error) {
	return []entity.SIMRSDoctor{{KdDokter: "D001", NmDokter: "dr. Sari Wijaya", Spesialis: "Umum"}}, nil
}
func (f *fakeSIMRSRepo) ListClinics(ctx context.Context) ([]entity.SIMRSClinic, error) {
	return []entity.SIMRSClinic{{KdPoli: "UMU", NmPoli: "Poliklinik Umum"}}, nil
}

// 15 May 1990, male.
const testNIKMale = "3201011505900001"

// Day 55 encodes 15 with the female offset.
const testNIKFemale = "3201015505900002"

func seedRegistrationBooking(repo *fakeBookingRepo, nikValue string) *entity.Booking {
	booking := &entity.Booking{
		ID:          uuid.New(),
		KodeBooking: "MB-20250721-XYZ",
		NamaPasien:  "Budi Santoso",
		Telepon:     "081234567890",
		Email:       "budi@example.com",
		NIK:         nikValue,
		Alamat:      "Jl. Merdeka No. 1",
		Tanggal:     time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC),
		Waktu:       "09:30",
		DokterID:    uuid.New(),
		Status:      entity.BookingStatusConfirmed,
	}
	repo.bookings[booking.ID] = booking
	return booking
}

func newRegistrationUsecase(bookingRepo *fakeBookingRepo, simrsRepo *fakeSIMRSRepo) *patientRegistrationUsecase {
	uc := NewPatientRegistrationUsecase(testDB(), testLogger(), bookingRepo, simrsRepo).(*patientRegistrationUsecase)
	uc.now = func() time.Time { return time.Date(2025, 7, 21, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestCheckPatient(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedRegistrationBooking(bookingRepo, testNIKMale)
	simrsRepo := newFakeSIMRSRepo()

	uc := newRegistrationUsecase(bookingRepo, simrsRepo)

	status, err := uc.CheckPatient(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("CheckPatient() error = %v", err)
	}
	if status.Terdaftar {
		t.Error("terdaftar = true for an unknown NIK")
	}

	simrsRepo.patients[testNIKMale] = &entity.Patient{
		NoRkmMedis: "000041",
		NmPasien:   "BUDI SANTOSO",
		NoKTP:      testNIKMale,
	}

	status, err = uc.CheckPatient(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("CheckPatient() error = %v", err)
	}
	if !status.Terdaftar {
		t.Error("terdaftar = false for a registered NIK")
	}
	if status.NoRkmMedis != "000041" {
		t.Errorf("no_rkm_medis = %q, want 000041", status.NoRkmMedis)
	}
}

func TestRegisterPatientNew(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedRegistrationBooking(bookingRepo, testNIKMale)
	simrsRepo := newFakeSIMRSRepo()
	simrsRepo.maxNumber = 41

	uc := newRegistrationUsecase(bookingRepo, simrsRepo)

	resp, err := uc.RegisterPatient(context.Background(), booking.ID, &dto.RegisterPatientRequest{
		TempatLahir: "Bogor",
		NamaIbu:     "Siti Aminah",
	})
	if err != nil {
		t.Fatalf("RegisterPatient() error = %v", err)
	}

	if resp.NoRkmMedis != "000042" {
		t.Errorf("no_rkm_medis = %q, want 000042", resp.NoRkmMedis)
	}
	if resp.SudahTerdaftar {
		t.Error("sudah_terdaftar = true for a fresh registration")
	}

	if len(simrsRepo.created) != 1 {
		t.Fatalf("created patients = %d, want 1", len(simrsRepo.created))
	}
	patient := simrsRepo.created[0]

	if patient.NmPasien != "BUDI SANTOSO" {
		t.Errorf("nm_pasien = %q, want BUDI SANTOSO", patient.NmPasien)
	}
	if patient.JK != nik.GenderMale {
		t.Errorf("jk = %q, want %q", patient.JK, nik.GenderMale)
	}
	wantBirth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	if !patient.TglLahir.Equal(wantBirth) {
		t.Errorf("tgl_lahir = %v, want %v", patient.TglLahir, wantBirth)
	}
	if patient.Umur != "35 Th" {
		t.Errorf("umur = %q, want 35 Th", patient.Umur)
	}
	if patient.TmpLahir != "Bogor" {
		t.Errorf("tmp_lahir = %q, want Bogor", patient.TmpLahir)
	}
	if patient.NoTlp != booking.Telepon {
		t.Errorf("no_tlp = %q, want %q", patient.NoTlp, booking.Telepon)
	}
}

func TestRegisterPatientFemaleNIK(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedRegistrationBooking(bookingRepo, testNIKFemale)
	simrsRepo := newFakeSIMRSRepo()

	uc := newRegistrationUsecase(bookingRepo, simrsRepo)

	if _, err := uc.RegisterPatient(context.Background(), booking.ID, &dto.RegisterPatientRequest{}); err != nil {
		t.Fatalf("RegisterPatient() error = %v", err)
	}

	if got := simrsRepo.created[0].JK; got != nik.GenderFemale {
		t.Errorf("jk = %q, want %q", got, nik.GenderFemale)
	}
}

func TestRegisterPatientExisting(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedRegistrationBooking(bookingRepo, testNIKMale)
	simrsRepo := newFakeSIMRSRepo()
	simrsRepo.patients[testNIKMale] = &entity.Patient{
		NoRkmMedis: "000007",
		NoKTP:      testNIKMale,
	}

	uc := newRegistrationUsecase(bookingRepo, simrsRepo)

	resp, err := uc.RegisterPatient(context.Background(), booking.ID, &dto.RegisterPatientRequest{})
	if err != nil {
		t.Fatalf("RegisterPatient() error = %v", err)
	}

	if !resp.SudahTerdaftar {
		t.Error("sudah_terdaftar = false for an existing patient")
	}
	if resp.NoRkmMedis != "000007" {
		t.Errorf("no_rkm_medis = %q, want 000007", resp.NoRkmMedis)
	}
	if len(simrsRepo.created) != 0 {
		t.Errorf("created patients = %d, want 0", len(simrsRepo.created))
	}
}

func TestRegisterPatientOverrides(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedRegistrationBooking(bookingRepo, testNIKMale)
	simrsRepo := newFakeSIMRSRepo()

	uc := newRegistrationUsecase(bookingRepo, simrsRepo)

	_, err := uc.RegisterPatient(context.Background(), booking.ID, &dto.RegisterPatientRequest{
		TglLahir: "1991-02-03",
		JK:       nik.GenderFemale,
	})
	if err != nil {
		t.Fatalf("RegisterPatient() error = %v", err)
	}

	patient := simrsRepo.created[0]
	wantBirth := time.Date(1991, 2, 3, 0, 0, 0, 0, time.UTC)
	if !patient.TglLahir.Equal(wantBirth) {
		t.Errorf("tgl_lahir = %v, want %v", patient.TglLahir, wantBirth)
	}
	if patient.JK != nik.GenderFemale {
		t.Errorf("jk = %q, want %q", patient.JK, nik.GenderFemale)
	}
}

func TestRegisterPatientRejections(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	noNIK := seedRegistrationBooking(bookingRepo, "")
	badNIK := seedRegistrationBooking(bookingRepo, "123")
	simrsRepo := newFakeSIMRSRepo()

	uc := newRegistrationUsecase(bookingRepo, simrsRepo)

	if _, err := uc.RegisterPatient(context.Background(), noNIK.ID, &dto.RegisterPatientRequest{}); !errors.Is(err, ErrBookingHasNoNIK) {
		t.Errorf("empty NIK: error = %v, want %v", err, ErrBookingHasNoNIK)
	}
	if _, err := uc.RegisterPatient(context.Background(), badNIK.ID, &dto.RegisterPatientRequest{}); !errors.Is(err, ErrInvalidNIK) {
		t.Errorf("malformed NIK: error = %v, want %v", err, ErrInvalidNIK)
	}
	if _, err := uc.RegisterPatient(context.Background(), uuid.New(), &dto.RegisterPatientRequest{}); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("missing booking: error = %v, want %v", err, ErrBookingNotFound)
	}
	if len(simrsRepo.created) != 0 {
		t.Errorf("created patients = %d, want 0", len(simrsRepo.created))
	}
}
