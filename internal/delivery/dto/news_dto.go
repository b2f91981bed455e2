package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNewsRequest struct {
	Judul     string `json:"judul" validate:"required,min=3,max=255"`
	Konten    string `json:"konten" validate:"required"`
	Gambar    string `json:"gambar" validate:"omitempty"`
	Published *bool  `json:"published"`
}

type UpdateNewsRequest struct {
	Judul     *string `json:"judul" validate:"omitempty,min=3,max=255"`
	Konten    *string `json:"konten" validate:"omitempty"`
	Gambar    *string `json:"gambar" validate:"omitempty"`
	Published *bool   `json:"published"`
}

type SearchNewsRequest struct {
	Page  int `json:"page" validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

type NewsResponse struct {
	ID          uuid.UUID  `json:"id"`
	Judul       string     `json:"judul"`
	Slug        string     `json:"slug"`
	Konten      string     `json:"konten"`
	Gambar      string     `json:"gambar,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
