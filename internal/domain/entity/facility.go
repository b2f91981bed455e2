package entity

import (
	"time"

	"github.com/google/uuid"
)

// Facility represents a clinic facility (fasilitas) shown on the public site.
type Facility struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nama      string    `gorm:"type:varchar(255);not null" json:"nama"`
	Deskripsi string    `gorm:"type:text" json:"deskripsi,omitempty"`
	Gambar    string    `gorm:"type:text" json:"gambar,omitempty"`
	Urutan    int       `gorm:"not null;default:0" json:"urutan"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Facility) TableName() string {
	return "fasilitas"
}
