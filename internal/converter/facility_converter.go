package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

func FacilityToResponse(facility *entity.Facility) *dto.FacilityResponse {
	return &dto.FacilityResponse{
		ID:        facility.ID,
		Nama:      facility.Nama,
		Deskripsi: facility.Deskripsi,
		Gambar:    facility.Gambar,
		Urutan:    facility.Urutan,
		CreatedAt: facility.CreatedAt,
		UpdatedAt: facility.UpdatedAt,
	}
}

func FacilitiesToResponses(facilities []entity.Facility) []dto.FacilityResponse {
	responses := make([]dto.FacilityResponse, len(facilities))
	for i := range facilities {
		responses[i] = *FacilityToResponse(&facilities[i])
	}
	return responses
}
