package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertPageRequest struct {
	Judul  string `json:"judul" validate:"required,min=3,max=255"`
	Konten string `json:"konten" validate:"required"`
}

type PageResponse struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Judul     string    `json:"judul"`
	Konten    string    `json:"konten"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
