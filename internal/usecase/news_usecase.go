package usecase

import (
	"context"
	"errors"
	"time"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/slug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news article not found")

const (
	defaultNewsPage  = 1
	defaultNewsLimit = 10
)

type NewsListResult struct {
	Items []dto.NewsResponse
	Meta  *response.Meta
}

type NewsUsecase interface {
	CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error)
	GetNewsBySlug(ctx context.Context, slugValue string) (*dto.NewsResponse, error)
	ListNews(ctx context.Context, req *dto.SearchNewsRequest) (*NewsListResult, error)
	ListPublishedNews(ctx context.Context, req *dto.SearchNewsRequest) (*NewsListResult, error)
	UpdateNews(ctx context.Context, id uuid.UUID, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error)
	DeleteNews(ctx context.Context, id uuid.UUID) error
}

type newsUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	newsRepo repository.NewsRepository
	now      func() time.Time
}

func NewNewsUsecase(db *gorm.DB, log *logrus.Logger, newsRepo repository.NewsRepository) NewsUsecase {
	return &newsUsecase{
		db:       db,
		log:      log,
		newsRepo: newsRepo,
		now:      time.Now,
	}
}

func (u *newsUsecase) uniqueSlug(db *gorm.DB, title string, excludeID *uuid.UUID) (string, error) {
	candidate := slug.Make(title)
	count, err := u.newsRepo.CountBySlug(db, candidate, excludeID)
	if err != nil {
		return "", err
	}
	if count > 0 {
		candidate = slug.WithSuffix(candidate)
	}
	return candidate, nil
}

func (u *newsUsecase) CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	db := u.db.WithContext(ctx)

	slugValue, err := u.uniqueSlug(db, req.Judul, nil)
	if err != nil {
		u.log.Warnf("Failed to check slug uniqueness: %+v", err)
		return nil, err
	}

	news := &entity.News{
		Judul:     req.Judul,
		Slug:      slugValue,
		Konten:    req.Konten,
		Gambar:    req.Gambar,
		Published: req.Published,
	}
	if news.Published == nil {
		published := false
		news.Published = &published
	}
	if *news.Published {
		publishedAt := u.now()
		news.PublishedAt = &publishedAt
	}

	if err := u.newsRepo.Create(db, news); err != nil {
		u.log.Warnf("Failed to create news article: %+v", err)
		return nil, err
	}

	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) GetNewsBySlug(ctx context.Context, slugValue string) (*dto.NewsResponse, error) {
	news, err := u.newsRepo.FindBySlug(u.db.WithContext(ctx), slugValue)
	if err != nil {
		u.log.Warnf("Failed to find news article by slug: %+v", err)
		return nil, err
	}
	if news == nil || !news.IsPublished() {
		return nil, ErrNewsNotFound
	}

	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) ListNews(ctx context.Context, req *dto.SearchNewsRequest) (*NewsListResult, error) {
	page, limit := normalizePaging(req.Page, req.Limit)

	items, total, err := u.newsRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to list news articles: %+v", err)
		return nil, err
	}

	return &NewsListResult{
		Items: converter.NewsListToResponses(items),
		Meta:  response.NewMeta(page, limit, total),
	}, nil
}

func (u *newsUsecase) ListPublishedNews(ctx context.Context, req *dto.SearchNewsRequest) (*NewsListResult, error) {
	page, limit := normalizePaging(req.Page, req.Limit)

	items, total, err := u.newsRepo.FindAllPublished(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to list published news articles: %+v", err)
		return nil, err
	}

	return &NewsListResult{
		Items: converter.NewsListToResponses(items),
		Meta:  response.NewMeta(page, limit, total),
	}, nil
}

func (u *newsUsecase) UpdateNews(ctx context.Context, id uuid.UUID, req *dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	db := u.db.WithContext(ctx)

	news, err := u.newsRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find news article: %+v", err)
		return nil, err
	}
	if news == nil {
		return nil, ErrNewsNotFound
	}

	if req.Judul != nil && *req.Judul != news.Judul {
		slugValue, err := u.uniqueSlug(db, *req.Judul, &news.ID)
		if err != nil {
			u.log.Warnf("Failed to check slug uniqueness: %+v", err)
			return nil, err
		}
		news.Judul = *req.Judul
		news.Slug = slugValue
	}
	if req.Konten != nil {
		news.Konten = *req.Konten
	}
	if req.Gambar != nil {
		news.Gambar = *req.Gambar
	}
	if req.Published != nil {
		// First transition to published stamps published_at; republishing
		// keeps the original timestamp.
		if *req.Published && !news.IsPublished() && news.PublishedAt == nil {
			publishedAt := u.now()
			news.PublishedAt = &publishedAt
		}
		news.Published = req.Published
	}

	if err := u.newsRepo.Update(db, news); err != nil {
		u.log.Warnf("Failed to update news article: %+v", err)
		return nil, err
	}

	return converter.NewsToResponse(news), nil
}

func (u *newsUsecase) DeleteNews(ctx context.Context, id uuid.UUID) error {
	affected, err := u.newsRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete news article: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultNewsPage
	}
	if limit < 1 || limit > 100 {
		limit = defaultNewsLimit
	}
	return page, limit
}
