package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFacilityRequest struct {
	Nama      string `json:"nama" validate:"required,min=3,max=255"`
	Deskripsi string `json:"deskripsi" validate:"omitempty,max=5000"`
	Gambar    string `json:"gambar" validate:"omitempty"`
	Urutan    int    `json:"urutan" validate:"omitempty,min=0"`
}

type UpdateFacilityRequest struct {
	Nama      *string `json:"nama" validate:"omitempty,min=3,max=255"`
	Deskripsi *string `json:"deskripsi" validate:"omitempty,max=5000"`
	Gambar    *string `json:"gambar" validate:"omitempty"`
	Urutan    *int    `json:"urutan" validate:"omitempty,min=0"`
}

type FacilityResponse struct {
	ID        uuid.UUID `json:"id"`
	Nama      string    `json:"nama"`
	Deskripsi string    `json:"deskripsi,omitempty"`
	Gambar    string    `json:"gambar,omitempty"`
	Urutan    int       `json:"urutan"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
