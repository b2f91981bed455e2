package repository

import (
	"go-clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

type PageRepository interface {
	Create(db *gorm.DB, page *entity.Page) error
	FindBySlug(db *gorm.DB, slug string) (*entity.Page, error)
	FindAll(db *gorm.DB) ([]entity.Page, error)
	Update(db *gorm.DB, page *entity.Page) error
}
