package repository

import (
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type newsRepository struct{}

func NewNewsRepository() domainRepo.NewsRepository {
	return &newsRepository{}
}

func (r *newsRepository) Create(db *gorm.DB, news *entity.News) error {
	return db.Create(news).Error
}

func (r *newsRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.News, error) {
	var news entity.News
	err := db.Where("id = ?", id).First(&news).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) FindBySlug(db *gorm.DB, slug string) (*entity.News, error) {
	var news entity.News
	err := db.Where("slug = ?", slug).First(&news).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.News, int64, error) {
	return r.paginate(db.Model(&entity.News{}), page, limit)
}

func (r *newsRepository) FindAllPublished(db *gorm.DB, page, limit int) ([]entity.News, int64, error) {
	query := db.Model(&entity.News{}).Where("published = ?", true)
	return r.paginate(query, page, limit)
}

func (r *newsRepository) paginate(query *gorm.DB, page, limit int) ([]entity.News, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var items []entity.News
	err := query.Order("COALESCE(published_at, created_at) DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *newsRepository) CountBySlug(db *gorm.DB, slug string, excludeID *uuid.UUID) (int64, error) {
	query := db.Model(&entity.News{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *newsRepository) Update(db *gorm.DB, news *entity.News) error {
	return db.Save(news).Error
}

func (r *newsRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.News{})
	return result.RowsAffected, result.Error
}
