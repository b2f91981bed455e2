package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	resp := &dto.DoctorResponse{
		ID:        doctor.ID,
		Nama:      doctor.Nama,
		Spesialis: doctor.Spesialis,
		Foto:      doctor.Foto,
		Aktif:     doctor.IsActive(),
		Urutan:    doctor.Urutan,
		CreatedAt: doctor.CreatedAt,
		UpdatedAt: doctor.UpdatedAt,
	}

	if len(doctor.Jadwal) > 0 {
		resp.Jadwal = SchedulesToResponses(doctor.Jadwal)
	}

	return resp
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
