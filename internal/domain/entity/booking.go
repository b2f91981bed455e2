package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a patient appointment request submitted from the public
// site. At most one non-cancelled booking may exist per (telepon, tanggal,
// dokter_id); the partial unique index in the schema is the authoritative
// guard.
type Booking struct {
	ID                 uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	KodeBooking        string        `gorm:"column:kode_booking;type:varchar(20);uniqueIndex;not null" json:"kode_booking"`
	NamaPasien         string        `gorm:"column:nama_pasien;type:varchar(255);not null" json:"nama_pasien"`
	Telepon            string        `gorm:"type:varchar(20);not null;index" json:"telepon"`
	Email              string        `gorm:"type:varchar(255)" json:"email,omitempty"`
	NIK                string        `gorm:"column:nik;type:varchar(16)" json:"nik,omitempty"`
	Alamat             string        `gorm:"type:text" json:"alamat,omitempty"`
	Asuransi           string        `gorm:"type:varchar(100)" json:"asuransi,omitempty"`
	Tanggal            time.Time     `gorm:"type:date;not null;index" json:"tanggal"`
	Waktu              string        `gorm:"type:varchar(5);not null" json:"waktu"`
	DokterID           uuid.UUID     `gorm:"column:dokter_id;type:uuid;not null;index" json:"dokter_id"`
	Keluhan            string        `gorm:"type:text" json:"keluhan,omitempty"`
	Status             BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CatatanAdmin       string        `gorm:"column:catatan_admin;type:text" json:"catatan_admin,omitempty"`
	NotifikasiTerkirim bool          `gorm:"column:notifikasi_terkirim;not null;default:false" json:"notifikasi_terkirim"`
	CreatedAt          time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Dokter Doctor `gorm:"foreignKey:DokterID" json:"dokter,omitempty"`
}

func (Booking) TableName() string {
	return "booking"
}

// IsConfirmed checks if booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
