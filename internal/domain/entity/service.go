package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service represents a clinic service (layanan) shown on the public site.
type Service struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nama      string          `gorm:"type:varchar(255);not null" json:"nama"`
	Slug      string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Deskripsi string          `gorm:"type:text" json:"deskripsi,omitempty"`
	Harga     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"harga"`
	Urutan    int             `gorm:"not null;default:0" json:"urutan"`
	Aktif     *bool           `gorm:"not null;default:true;index" json:"aktif"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "layanan"
}
