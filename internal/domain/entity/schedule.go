package entity

import (
	"time"

	"github.com/google/uuid"
)

// Day-of-week values, Senin (Monday) through Minggu (Sunday). Display order
// always follows these values ascending.
const (
	HariSenin  = 1
	HariSelasa = 2
	HariRabu   = 3
	HariKamis  = 4
	HariJumat  = 5
	HariSabtu  = 6
	HariMinggu = 7
)

var hariNames = map[int]string{
	HariSenin:  "Senin",
	HariSelasa: "Selasa",
	HariRabu:   "Rabu",
	HariKamis:  "Kamis",
	HariJumat:  "Jumat",
	HariSabtu:  "Sabtu",
	HariMinggu: "Minggu",
}

// HariName returns the Indonesian day name for a day-of-week value.
func HariName(hari int) string {
	return hariNames[hari]
}

// ValidHari reports whether hari is a known day-of-week value.
func ValidHari(hari int) bool {
	return hari >= HariSenin && hari <= HariMinggu
}

// Schedule represents a recurring weekly practice slot for a doctor.
type Schedule struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DokterID   uuid.UUID `gorm:"column:dokter_id;type:uuid;not null;index" json:"dokter_id"`
	Hari       int       `gorm:"not null;index" json:"hari"`
	JamMulai   string    `gorm:"column:jam_mulai;type:varchar(5);not null" json:"jam_mulai"`
	JamSelesai string    `gorm:"column:jam_selesai;type:varchar(5);not null" json:"jam_selesai"`
	Aktif      *bool     `gorm:"not null;default:true;index" json:"aktif"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Dokter Doctor `gorm:"foreignKey:DokterID" json:"dokter,omitempty"`
}

func (Schedule) TableName() string {
	return "jadwal"
}
