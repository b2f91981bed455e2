package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDoctorRequest struct {
	Nama      string `json:"nama" validate:"required,min=3,max=100"`
	Spesialis string `json:"spesialis" validate:"required,max=100"`
	Foto      string `json:"foto" validate:"omitempty,url"`
	Aktif     *bool  `json:"aktif"`
	Urutan    int    `json:"urutan" validate:"omitempty,min=0"`
}

type UpdateDoctorRequest struct {
	Nama      *string `json:"nama" validate:"omitempty,min=3,max=100"`
	Spesialis *string `json:"spesialis" validate:"omitempty,max=100"`
	Foto      *string `json:"foto" validate:"omitempty"`
	Aktif     *bool   `json:"aktif"`
	Urutan    *int    `json:"urutan" validate:"omitempty,min=0"`
}

type DoctorResponse struct {
	ID        uuid.UUID          `json:"id"`
	Nama      string             `json:"nama"`
	Spesialis string             `json:"spesialis"`
	Foto      string             `json:"foto,omitempty"`
	Aktif     bool               `json:"aktif"`
	Urutan    int                `json:"urutan"`
	Jadwal    []ScheduleResponse `json:"jadwal,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
