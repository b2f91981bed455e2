package repository

import (
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"gorm.io/gorm"
)

type pageRepository struct{}

func NewPageRepository() domainRepo.PageRepository {
	return &pageRepository{}
}

func (r *pageRepository) Create(db *gorm.DB, page *entity.Page) error {
	return db.Create(page).Error
}

func (r *pageRepository) FindBySlug(db *gorm.DB, slug string) (*entity.Page, error) {
	var page entity.Page
	err := db.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) FindAll(db *gorm.DB) ([]entity.Page, error) {
	var pages []entity.Page
	err := db.Order("slug ASC").Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepository) Update(db *gorm.DB, page *entity.Page) error {
	return db.Save(page).Error
}
