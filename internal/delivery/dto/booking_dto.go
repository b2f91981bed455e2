package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	NamaPasien string `json:"nama_pasien" validate:"required,min=3,max=100"`
	Telepon    string `json:"telepon" validate:"required,min=8,max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
	NIK        string `json:"nik" validate:"omitempty,len=16,numeric"`
	Alamat     string `json:"alamat" validate:"omitempty,max=255"`
	Asuransi   string `json:"asuransi" validate:"omitempty,max=100"`
	Tanggal    string `json:"tanggal" validate:"required"`
	Waktu      string `json:"waktu" validate:"required"`
	DokterID   string `json:"dokter_id" validate:"required,uuid"`
	Keluhan    string `json:"keluhan" validate:"omitempty,max=1000"`
}

// UpdateBookingRequest carries partial updates. Nil fields are left untouched.
type UpdateBookingRequest struct {
	Status       *string `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	CatatanAdmin *string `json:"catatan_admin" validate:"omitempty,max=1000"`
	Tanggal      *string `json:"tanggal" validate:"omitempty"`
	Waktu        *string `json:"waktu" validate:"omitempty"`
	NIK          *string `json:"nik" validate:"omitempty,len=16,numeric"`
	Alamat       *string `json:"alamat" validate:"omitempty,max=255"`
}

type SearchBookingRequest struct {
	Status  string `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	Tanggal string `json:"tanggal" validate:"omitempty"`
	Search  string `json:"search" validate:"omitempty,max=100"`
	Page    int    `json:"page" validate:"omitempty,min=1"`
	Limit   int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

type BookingResponse struct {
	ID                 uuid.UUID       `json:"id"`
	KodeBooking        string          `json:"kode_booking"`
	NamaPasien         string          `json:"nama_pasien"`
	Telepon            string          `json:"telepon"`
	Email              string          `json:"email,omitempty"`
	NIK                string          `json:"nik,omitempty"`
	Alamat             string          `json:"alamat,omitempty"`
	Asuransi           string          `json:"asuransi,omitempty"`
	Tanggal            string          `json:"tanggal"`
	Waktu              string          `json:"waktu"`
	DokterID           uuid.UUID       `json:"dokter_id"`
	Dokter             *DoctorResponse `json:"dokter,omitempty"`
	Keluhan            string          `json:"keluhan,omitempty"`
	Status             string          `json:"status"`
	CatatanAdmin       string          `json:"catatan_admin,omitempty"`
	NotifikasiTerkirim bool            `json:"notifikasi_terkirim"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
}

type BookingUpdateResponse struct {
	Booking           *BookingResponse `json:"booking"`
	NotifikasiDikirim bool             `json:"notifikasi_dikirim"`
}
