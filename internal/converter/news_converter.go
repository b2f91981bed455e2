package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

func NewsToResponse(news *entity.News) *dto.NewsResponse {
	return &dto.NewsResponse{
		ID:          news.ID,
		Judul:       news.Judul,
		Slug:        news.Slug,
		Konten:      news.Konten,
		Gambar:      news.Gambar,
		Published:   news.IsPublished(),
		PublishedAt: news.PublishedAt,
		CreatedAt:   news.CreatedAt,
		UpdatedAt:   news.UpdatedAt,
	}
}

func NewsListToResponses(items []entity.News) []dto.NewsResponse {
	responses := make([]dto.NewsResponse, len(items))
	for i := range items {
		responses[i] = *NewsToResponse(&items[i])
	}
	return responses
}
