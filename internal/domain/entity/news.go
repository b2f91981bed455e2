package entity

import (
	"time"

	"github.com/google/uuid"
)

// News represents a news article (berita). Unpublished articles are only
// visible to admins.
type News struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Judul       string     `gorm:"type:varchar(255);not null" json:"judul"`
	Slug        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Konten      string     `gorm:"type:text;not null" json:"konten"`
	Gambar      string     `gorm:"type:text" json:"gambar,omitempty"`
	Published   *bool      `gorm:"not null;default:false;index" json:"published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (News) TableName() string {
	return "berita"
}

// IsPublished reports whether the article is publicly visible.
func (n *News) IsPublished() bool {
	return n.Published != nil && *n.Published
}
