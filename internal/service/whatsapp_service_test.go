package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-clinic-management/config"

	"github.com/sirupsen/logrus"
)

func testMessage() *BookingMessage {
	return &BookingMessage{
		Phone:       "0811222333",
		NamaPasien:  "Ani",
		KodeBooking: "MB-20250601-A1B",
		Tanggal:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Waktu:       "09:00",
		NamaDokter:  "dr. Budi",
	}
}

func TestWhatsAppService_SendBookingConfirmation(t *testing.T) {
	var gotTarget, gotMessage, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotTarget = r.PostFormValue("target")
		gotMessage = r.PostFormValue("message")
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewWhatsAppService(config.WhatsAppConfig{
		APIURL:     server.URL,
		Token:      "secret-token",
		ClinicName: "Klinik Sehat",
	}, logrus.New())

	if err := svc.SendBookingConfirmation(context.Background(), testMessage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTarget != "0811222333" {
		t.Errorf("target = %q, want patient phone", gotTarget)
	}
	if gotAuth != "secret-token" {
		t.Errorf("authorization = %q, want token", gotAuth)
	}
	for _, want := range []string{"Ani", "MB-20250601-A1B", "dr. Budi", "1 Juni 2025", "09:00"} {
		if !strings.Contains(gotMessage, want) {
			t.Errorf("message missing %q:\n%s", want, gotMessage)
		}
	}
}

func TestWhatsAppService_GatewayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewWhatsAppService(config.WhatsAppConfig{APIURL: server.URL}, logrus.New())
	if err := svc.SendBookingConfirmation(context.Background(), testMessage()); err == nil {
		t.Fatal("expected error on non-2xx gateway response")
	}
}

func TestWhatsAppService_AdminAlertSkippedWithoutAdminPhone(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewWhatsAppService(config.WhatsAppConfig{APIURL: server.URL}, logrus.New())
	if err := svc.SendAdminAlert(context.Background(), testMessage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Error("no request should be made when admin phone is not configured")
	}
}

func TestFormatTanggal(t *testing.T) {
	got := FormatTanggal(time.Date(2025, 12, 17, 0, 0, 0, 0, time.UTC))
	if got != "17 Desember 2025" {
		t.Errorf("FormatTanggal = %q, want %q", got, "17 Desember 2025")
	}
}
