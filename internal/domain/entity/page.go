package entity

import (
	"time"

	"github.com/google/uuid"
)

// Page represents an editable site content block (halaman) keyed by slug,
// e.g. tentang-kami, kontak.
type Page struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Judul     string    `gorm:"type:varchar(255);not null" json:"judul"`
	Konten    string    `gorm:"type:text;not null" json:"konten"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Page) TableName() string {
	return "halaman"
}
