package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

func SIMRSDoctorsToResponses(doctors []entity.SIMRSDoctor) []dto.SIMRSDoctorResponse {
	responses := make([]dto.SIMRSDoctorResponse, len(doctors))
	for i, d := range doctors {
		responses[i] = dto.SIMRSDoctorResponse{
			KdDokter:  d.KdDokter,
			NmDokter:  d.NmDokter,
			Spesialis: d.Spesialis,
		}
	}
	return responses
}

func SIMRSClinicsToResponses(clinics []entity.SIMRSClinic) []dto.SIMRSClinicResponse {
	responses := make([]dto.SIMRSClinicResponse, len(clinics))
	for i, c := range clinics {
		responses[i] = dto.SIMRSClinicResponse{
			KdPoli: c.KdPoli,
			NmPoli: c.NmPoli,
		}
	}
	return responses
}
