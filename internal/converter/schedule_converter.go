package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"

	"github.com/google/uuid"
)

func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		ID:         schedule.ID,
		DokterID:   schedule.DokterID,
		Hari:       schedule.Hari,
		NamaHari:   entity.HariName(schedule.Hari),
		JamMulai:   schedule.JamMulai,
		JamSelesai: schedule.JamSelesai,
		Aktif:      schedule.Aktif != nil && *schedule.Aktif,
	}

	if schedule.Dokter.ID != uuid.Nil {
		resp.NamaDokter = schedule.Dokter.Nama
		resp.Spesialis = schedule.Dokter.Spesialis
	}

	return resp
}

func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}

// SchedulesToDayResponses groups active schedules by day of the week, Senin
// through Minggu, skipping days without any slot.
func SchedulesToDayResponses(schedules []entity.Schedule) []dto.DayScheduleResponse {
	byDay := make(map[int][]dto.ScheduleResponse)
	for i := range schedules {
		byDay[schedules[i].Hari] = append(byDay[schedules[i].Hari], *ScheduleToResponse(&schedules[i]))
	}

	days := make([]dto.DayScheduleResponse, 0, len(byDay))
	for hari := entity.HariSenin; hari <= entity.HariMinggu; hari++ {
		if slots, ok := byDay[hari]; ok {
			days = append(days, dto.DayScheduleResponse{
				Hari:     hari,
				NamaHari: entity.HariName(hari),
				Jadwal:   slots,
			})
		}
	}
	return days
}
