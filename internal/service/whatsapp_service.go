package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-clinic-management/config"

	"github.com/sirupsen/logrus"
)

// BookingMessage carries the fields of a booking notification.
type BookingMessage struct {
	Phone       string
	NamaPasien  string
	KodeBooking string
	Tanggal     time.Time
	Waktu       string
	NamaDokter  string
}

// BookingNotifier sends booking notifications. Implementations are
// best-effort: callers treat a returned error as "not sent", never as a
// request failure.
type BookingNotifier interface {
	SendBookingConfirmation(ctx context.Context, msg *BookingMessage) error
	SendAdminAlert(ctx context.Context, msg *BookingMessage) error
}

var errGatewayNotConfigured = errors.New("whatsapp gateway not configured")

// WhatsAppService posts messages to an HTTP WhatsApp gateway.
type WhatsAppService struct {
	client *http.Client
	cfg    config.WhatsAppConfig
	log    *logrus.Logger
}

func NewWhatsAppService(cfg config.WhatsAppConfig, log *logrus.Logger) *WhatsAppService {
	return &WhatsAppService{
		client: &http.Client{Timeout: 10 * time.Second},
		cfg:    cfg,
		log:    log,
	}
}

func (s *WhatsAppService) SendBookingConfirmation(ctx context.Context, msg *BookingMessage) error {
	text := fmt.Sprintf(
		"Halo %s, booking Anda di %s telah kami terima.\n\n"+
			"Kode booking: %s\n"+
			"Dokter: %s\n"+
			"Jadwal: %s pukul %s\n\n"+
			"Mohon tiba 15 menit sebelum jadwal. Terima kasih.",
		msg.NamaPasien, s.cfg.ClinicName, msg.KodeBooking, msg.NamaDokter,
		FormatTanggal(msg.Tanggal), msg.Waktu,
	)
	return s.send(ctx, msg.Phone, text)
}

// SendAdminAlert notifies the clinic admin of a new booking. A missing admin
// phone is not an error; the alert is simply skipped.
func (s *WhatsAppService) SendAdminAlert(ctx context.Context, msg *BookingMessage) error {
	if s.cfg.AdminPhone == "" {
		return nil
	}
	text := fmt.Sprintf(
		"Booking baru %s\nPasien: %s (%s)\nDokter: %s\nJadwal: %s pukul %s",
		msg.KodeBooking, msg.NamaPasien, msg.Phone, msg.NamaDokter,
		FormatTanggal(msg.Tanggal), msg.Waktu,
	)
	return s.send(ctx, s.cfg.AdminPhone, text)
}

func (s *WhatsAppService) send(ctx context.Context, phone, text string) error {
	if s.cfg.APIURL == "" {
		return errGatewayNotConfigured
	}

	form := url.Values{}
	form.Set("target", phone)
	form.Set("message", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnf("WhatsApp gateway unreachable: %+v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.log.Warnf("WhatsApp gateway returned status %d for %s", resp.StatusCode, phone)
		return fmt.Errorf("whatsapp gateway status %d", resp.StatusCode)
	}
	return nil
}

var bulanNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggal renders a date in Indonesian, e.g. "1 Juni 2025".
func FormatTanggal(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), bulanNames[t.Month()-1], t.Year())
}
