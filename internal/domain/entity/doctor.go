package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a practicing doctor shown on the public site and
// referenced by bookings and schedules.
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nama      string    `gorm:"type:varchar(255);not null" json:"nama"`
	Spesialis string    `gorm:"type:varchar(100);not null;index" json:"spesialis"`
	Foto      string    `gorm:"type:text" json:"foto,omitempty"`
	Aktif     *bool     `gorm:"not null;default:true;index" json:"aktif"`
	Urutan    int       `gorm:"not null;default:0" json:"urutan"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Jadwal []Schedule `gorm:"foreignKey:DokterID" json:"jadwal,omitempty"`
}

func (Doctor) TableName() string {
	return "dokter"
}

// IsActive reports whether the doctor accepts bookings.
func (d *Doctor) IsActive() bool {
	return d.Aktif != nil && *d.Aktif
}
