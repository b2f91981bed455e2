package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
)

func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	resp := &dto.BookingResponse{
		ID:                 booking.ID,
		KodeBooking:        booking.KodeBooking,
		NamaPasien:         booking.NamaPasien,
		Telepon:            booking.Telepon,
		Email:              booking.Email,
		NIK:                booking.NIK,
		Alamat:             booking.Alamat,
		Asuransi:           booking.Asuransi,
		Tanggal:            booking.Tanggal.Format("2006-01-02"),
		Waktu:              booking.Waktu,
		DokterID:           booking.DokterID,
		Keluhan:            booking.Keluhan,
		Status:             string(booking.Status),
		CatatanAdmin:       booking.CatatanAdmin,
		NotifikasiTerkirim: booking.NotifikasiTerkirim,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	if booking.Dokter.ID != uuid.Nil {
		resp.Dokter = DoctorToResponse(&booking.Dokter)
	}

	return resp
}

func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
