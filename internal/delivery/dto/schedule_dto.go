package dto

import "github.com/google/uuid"

type CreateScheduleRequest struct {
	DokterID   string `json:"dokter_id" validate:"required,uuid"`
	Hari       int    `json:"hari" validate:"required,min=1,max=7"`
	JamMulai   string `json:"jam_mulai" validate:"required"`
	JamSelesai string `json:"jam_selesai" validate:"required"`
	Aktif      *bool  `json:"aktif"`
}

type UpdateScheduleRequest struct {
	Hari       *int    `json:"hari" validate:"omitempty,min=1,max=7"`
	JamMulai   *string `json:"jam_mulai" validate:"omitempty"`
	JamSelesai *string `json:"jam_selesai" validate:"omitempty"`
	Aktif      *bool   `json:"aktif"`
}

type ScheduleResponse struct {
	ID         int       `json:"id"`
	DokterID   uuid.UUID `json:"dokter_id"`
	NamaDokter string    `json:"nama_dokter,omitempty"`
	Spesialis  string    `json:"spesialis,omitempty"`
	Hari       int       `json:"hari"`
	NamaHari   string    `json:"nama_hari"`
	JamMulai   string    `json:"jam_mulai"`
	JamSelesai string    `json:"jam_selesai"`
	Aktif      bool      `json:"aktif"`
}

// DayScheduleResponse groups active schedules under a day of the week,
// in the shape the marketing site renders directly.
type DayScheduleResponse struct {
	Hari     int                `json:"hari"`
	NamaHari string             `json:"nama_hari"`
	Jadwal   []ScheduleResponse `json:"jadwal"`
}
