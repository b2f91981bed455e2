package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

func PageToResponse(page *entity.Page) *dto.PageResponse {
	return &dto.PageResponse{
		ID:        page.ID,
		Slug:      page.Slug,
		Judul:     page.Judul,
		Konten:    page.Konten,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}
}

func PagesToResponses(pages []entity.Page) []dto.PageResponse {
	responses := make([]dto.PageResponse, len(pages))
	for i := range pages {
		responses[i] = *PageToResponse(&pages[i])
	}
	return responses
}
