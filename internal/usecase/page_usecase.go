package usecase

import (
	"context"
	"errors"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPageNotFound = errors.New("page not found")

type PageUsecase interface {
	GetPageBySlug(ctx context.Context, slug string) (*dto.PageResponse, error)
	ListPages(ctx context.Context) ([]dto.PageResponse, error)
	UpsertPage(ctx context.Context, slug string, req *dto.UpsertPageRequest) (*dto.PageResponse, error)
}

type pageUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	pageRepo repository.PageRepository
}

func NewPageUsecase(db *gorm.DB, log *logrus.Logger, pageRepo repository.PageRepository) PageUsecase {
	return &pageUsecase{
		db:       db,
		log:      log,
		pageRepo: pageRepo,
	}
}

func (u *pageUsecase) GetPageBySlug(ctx context.Context, slug string) (*dto.PageResponse, error) {
	page, err := u.pageRepo.FindBySlug(u.db.WithContext(ctx), slug)
	if err != nil {
		u.log.Warnf("Failed to find page by slug: %+v", err)
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}

	return converter.PageToResponse(page), nil
}

func (u *pageUsecase) ListPages(ctx context.Context) ([]dto.PageResponse, error) {
	pages, err := u.pageRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pages: %+v", err)
		return nil, err
	}

	return converter.PagesToResponses(pages), nil
}

// UpsertPage creates the content block on first write and replaces its title
// and body afterwards. The slug is the caller-supplied identity.
func (u *pageUsecase) UpsertPage(ctx context.Context, slug string, req *dto.UpsertPageRequest) (*dto.PageResponse, error) {
	db := u.db.WithContext(ctx)

	page, err := u.pageRepo.FindBySlug(db, slug)
	if err != nil {
		u.log.Warnf("Failed to find page by slug: %+v", err)
		return nil, err
	}

	if page == nil {
		page = &entity.Page{
			Slug:   slug,
			Judul:  req.Judul,
			Konten: req.Konten,
		}
		if err := u.pageRepo.Create(db, page); err != nil {
			u.log.Warnf("Failed to create page: %+v", err)
			return nil, err
		}
		return converter.PageToResponse(page), nil
	}

	page.Judul = req.Judul
	page.Konten = req.Konten
	if err := u.pageRepo.Update(db, page); err != nil {
		u.log.Warnf("Failed to update page: %+v", err)
		return nil, err
	}

	return converter.PageToResponse(page), nil
}
