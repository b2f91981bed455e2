package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Nama      string          `json:"nama" validate:"required,min=3,max=255"`
	Deskripsi string          `json:"deskripsi" validate:"omitempty,max=5000"`
	Harga     decimal.Decimal `json:"harga" validate:"omitempty"`
	Urutan    int             `json:"urutan" validate:"omitempty,min=0"`
	Aktif     *bool           `json:"aktif"`
}

type UpdateServiceRequest struct {
	Nama      *string          `json:"nama" validate:"omitempty,min=3,max=255"`
	Deskripsi *string          `json:"deskripsi" validate:"omitempty,max=5000"`
	Harga     *decimal.Decimal `json:"harga" validate:"omitempty"`
	Urutan    *int             `json:"urutan" validate:"omitempty,min=0"`
	Aktif     *bool            `json:"aktif"`
}

type ServiceResponse struct {
	ID        uuid.UUID       `json:"id"`
	Nama      string          `json:"nama"`
	Slug      string          `json:"slug"`
	Deskripsi string          `json:"deskripsi,omitempty"`
	Harga     decimal.Decimal `json:"harga"`
	Urutan    int             `json:"urutan"`
	Aktif     bool            `json:"aktif"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
