package usecase

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testDB returns a gorm handle that is safe for WithContext without a real
// connection. The fakes below never touch it.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error { return nil }
func (f *fakeDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return f.doctors[id], nil
}
func (f *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error)       { return nil, nil }
func (f *fakeDoctorRepo) FindAllActive(db *gorm.DB) ([]entity.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error    { return nil }
func (f *fakeDoctorRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error)    { return 0, nil }

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
	active   *entity.Booking
	created  []*entity.Booking
	updated  []*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	booking.ID = uuid.New()
	f.created = append(f.created, booking)
	f.bookings[booking.ID] = booking
	return nil
}
func (f *fakeBookingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}
func (f *fakeBookingRepo) FindActiveByPhoneDateDoctor(db *gorm.DB, telepon string, tanggal time.Time, dokterID uuid.UUID) (*entity.Booking, error) {
	return f.active, nil
}
func (f *fakeBookingRepo) Search(db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	var out []entity.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}
func (f *fakeBookingRepo) Update(db *gorm.DB, booking *entity.Booking) error {
	f.updated = append(f.updated, booking)
	f.bookings[booking.ID] = booking
	return nil
}

type fakeNotifier struct {
	confirmations []*service.BookingMessage
	adminAlerts   []*service.BookingMessage
	confirmErr    error
}

func (f *fakeNotifier) SendBookingConfirmation(ctx context.Context, msg *service.BookingMessage) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmations = append(f.confirmations, msg)
	return nil
}

func (f *fakeNotifier) SendAdminAlert(ctx context.Context, msg *service.BookingMessage) error {
	f.adminAlerts = append(f.adminAlerts, msg)
	return nil
}

func activeDoctor() *entity.Doctor {
	active := true
	return &entity.Doctor{
		ID:        uuid.New(),
		Nama:      "dr. Sari Wijaya",
		Spesialis: "Umum",
		Aktif:     &active,
	}
}

func createRequest(dokterID uuid.UUID) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		NamaPasien: "Budi Santoso",
		Telepon:    "081234567890",
		Tanggal:    "2025-07-21",
		Waktu:      "09:30",
		DokterID:   dokterID.String(),
		Keluhan:    "Demam tiga hari",
	}
}

func TestCreateBooking(t *testing.T) {
	doctor := activeDoctor()
	doctorRepo := &fakeDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{doctor.ID: doctor}}
	bookingRepo := newFakeBookingRepo()
	notifier := &fakeNotifier{}

	uc := NewBookingUsecase(testDB(), testLogger(), bookingRepo, doctorRepo, notifier)

	resp, err := uc.CreateBooking(context.Background(), createRequest(doctor.ID))
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	if resp.Status != string(entity.BookingStatusPending) {
		t.Errorf("status = %q, want %q", resp.Status, entity.BookingStatusPending)
	}

	codePattern := regexp.MustCompile(`^MB-20250721-[A-Z0-9]{3}$`)
	if !codePattern.MatchString(resp.KodeBooking) {
		t.Errorf("kode_booking = %q, want match %v", resp.KodeBooking, codePattern)
	}

	if !resp.NotifikasiTerkirim {
		t.Error("notifikasi_terkirim = false after a successful confirmation")
	}
	if len(notifier.confirmations) != 1 {
		t.Errorf("patient confirmations = %d, want 1", len(notifier.confirmations))
	}
	if len(notifier.adminAlerts) != 1 {
		t.Errorf("admin alerts = %d, want 1", len(notifier.adminAlerts))
	}
	if len(bookingRepo.created) != 1 {
		t.Fatalf("created bookings = %d, want 1", len(bookingRepo.created))
	}
}

func TestCreateBookingNotifierFailure(t *testing.T) {
	doctor := activeDoctor()
	doctorRepo := &fakeDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{doctor.ID: doctor}}
	bookingRepo := newFakeBookingRepo()
	notifier := &fakeNotifier{confirmErr: errors.New("gateway down")}

	uc := NewBookingUsecase(testDB(), testLogger(), bookingRepo, doctorRepo, notifier)

	resp, err := uc.CreateBooking(context.Background(), createRequest(doctor.ID))
	if err != nil {
		t.Fatalf("CreateBooking() error = %v, want booking to survive notifier failure", err)
	}

	if resp.NotifikasiTerkirim {
		t.Error("notifikasi_terkirim = true after a failed confirmation")
	}
	if len(bookingRepo.created) != 1 {
		t.Fatalf("created bookings = %d, want 1", len(bookingRepo.created))
	}
}

func TestCreateBookingRejections(t *testing.T) {
	doctor := activeDoctor()
	inactive := activeDoctor()
	*inactive.Aktif = false

	tests := []struct {
		name    string
		modify  func(req *dto.CreateBookingRequest)
		active  *entity.Booking
		wantErr error
	}{
		{
			name:    "invalid date",
			modify:  func(req *dto.CreateBookingRequest) { req.Tanggal = "21-07-2025" },
			wantErr: ErrInvalidBookingDate,
		},
		{
			name:    "invalid time",
			modify:  func(req *dto.CreateBookingRequest) { req.Waktu = "9.30" },
			wantErr: ErrInvalidBookingTime,
		},
		{
			name:    "unknown doctor",
			modify:  func(req *dto.CreateBookingRequest) { req.DokterID = uuid.New().String() },
			wantErr: ErrDoctorNotAvailable,
		},
		{
			name:    "inactive doctor",
			modify:  func(req *dto.CreateBookingRequest) { req.DokterID = inactive.ID.String() },
			wantErr: ErrDoctorNotAvailable,
		},
		{
			name:    "duplicate booking",
			modify:  func(req *dto.CreateBookingRequest) {},
			active:  &entity.Booking{ID: uuid.New()},
			wantErr: ErrDuplicateBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctorRepo := &fakeDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{
				doctor.ID:   doctor,
				inactive.ID: inactive,
			}}
			bookingRepo := newFakeBookingRepo()
			bookingRepo.active = tt.active
			notifier := &fakeNotifier{}

			uc := NewBookingUsecase(testDB(), testLogger(), bookingRepo, doctorRepo, notifier)

			req := createRequest(doctor.ID)
			tt.modify(req)

			_, err := uc.CreateBooking(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateBooking() error = %v, want %v", err, tt.wantErr)
			}
			if len(bookingRepo.created) != 0 {
				t.Errorf("created bookings = %d, want 0", len(bookingRepo.created))
			}
		})
	}
}

func seedBooking(repo *fakeBookingRepo, status entity.BookingStatus) *entity.Booking {
	booking := &entity.Booking{
		ID:          uuid.New(),
		KodeBooking: "MB-20250721-ABC",
		NamaPasien:  "Budi Santoso",
		Telepon:     "081234567890",
		Tanggal:     time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC),
		Waktu:       "09:30",
		DokterID:    uuid.New(),
		Status:      status,
	}
	repo.bookings[booking.ID] = booking
	return booking
}

func TestUpdateBookingConfirmSendsOneNotification(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedBooking(bookingRepo, entity.BookingStatusPending)
	notifier := &fakeNotifier{}

	uc := NewBookingUsecase(testDB(), testLogger(), bookingRepo, &fakeDoctorRepo{}, notifier)

	status := string(entity.BookingStatusConfirmed)
	resp, err := uc.UpdateBooking(context.Background(), booking.ID, &dto.UpdateBookingRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateBooking() error = %v", err)
	}

	if !resp.NotifikasiDikirim {
		t.Error("notifikasi_dikirim = false on a PENDING to CONFIRMED transition")
	}
	if len(notifier.confirmations) != 1 {
		t.Fatalf("confirmations = %d, want 1", len(notifier.confirmations))
	}

	// Confirming again must not re-notify.
	resp, err = uc.UpdateBooking(context.Background(), booking.ID, &dto.UpdateBookingRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateBooking() second call error = %v", err)
	}
	if resp.NotifikasiDikirim {
		t.Error("notifikasi_dikirim = true on an already-confirmed booking")
	}
	if len(notifier.confirmations) != 1 {
		t.Errorf("confirmations = %d after re-confirm, want 1", len(notifier.confirmations))
	}
}

func TestUpdateBookingUsesPostUpdateValues(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedBooking(bookingRepo, entity.BookingStatusPending)
	notifier := &fakeNotifier{}

	uc := NewBookingUsecase(testDB(), testLogger(), bookingRepo, &fakeDoctorRepo{}, notifier)

	status := string(entity.BookingStatusConfirmed)
	tanggal := "2025-08-01"
	waktu := "14:00"
	_, err := uc.UpdateBooking(context.Background(), booking.ID, &dto.UpdateBookingRequest{
		Status:  &status,
		Tanggal: &tanggal,
		Waktu:   &waktu,
	})
	if err != nil {
		t.Fatalf("UpdateBooking() error = %v", err)
	}

	if len(notifier.confirmations) != 1 {
		t.Fatalf("confirmations = %d, want 1", len(notifier.confirmations))
	}
	msg := notifier.confirmations[0]
	if got := msg.Tanggal.Format("2006-01-02"); got != tanggal {
		t.Errorf("notification tanggal = %s, want %s", got, tanggal)
	}
	if msg.Waktu != waktu {
		t.Errorf("notification waktu = %s, want %s", msg.Waktu, waktu)
	}
}

func TestUpdateBookingPartialFields(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedBooking(bookingRepo, entity.BookingStatusPending)
	notifier := &fakeNotifier{}

	uc := NewBookingUsecase(testDB(), testLogger(), bookingRepo, &fakeDoctorRepo{}, notifier)

	note := "pasien diminta datang 15 menit lebih awal"
	resp, err := uc.UpdateBooking(context.Background(), booking.ID, &dto.UpdateBookingRequest{CatatanAdmin: &note})
	if err != nil {
		t.Fatalf("UpdateBooking() error = %v", err)
	}

	if resp.Booking.CatatanAdmin != note {
		t.Errorf("catatan_admin = %q, want %q", resp.Booking.CatatanAdmin, note)
	}
	if resp.Booking.Status != string(entity.BookingStatusPending) {
		t.Errorf("status changed to %q on a note-only update", resp.Booking.Status)
	}
	if len(notifier.confirmations) != 0 {
		t.Errorf("confirmations = %d on a note-only update, want 0", len(notifier.confirmations))
	}
}

func TestUpdateBookingErrors(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	booking := seedBooking(bookingRepo, entity.BookingStatusPending)

	uc := NewBookingUsecase(testDB(), testLogger(), bookingRepo, &fakeDoctorRepo{}, &fakeNotifier{})

	badStatus := "APPROVED"
	if _, err := uc.UpdateBooking(context.Background(), booking.ID, &dto.UpdateBookingRequest{Status: &badStatus}); !errors.Is(err, ErrInvalidBookingStatus) {
		t.Errorf("invalid status: error = %v, want %v", err, ErrInvalidBookingStatus)
	}

	if _, err := uc.UpdateBooking(context.Background(), uuid.New(), &dto.UpdateBookingRequest{}); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("missing booking: error = %v, want %v", err, ErrBookingNotFound)
	}
}

func TestGenerateBookingCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^MB-20251231-[A-Z0-9]{3}$`)
	tanggal := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		code := generateBookingCode(tanggal)
		if !pattern.MatchString(code) {
			t.Fatalf("generateBookingCode() = %q, want match %v", code, pattern)
		}
	}
}
