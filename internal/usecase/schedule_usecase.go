package usecase

import (
	"context"
	"errors"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidHari      = errors.New("invalid day of week")
	ErrInvalidTimeRange = errors.New("jam_selesai must be after jam_mulai")
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	ListSchedules(ctx context.Context) ([]dto.ScheduleResponse, error)
	ListPublicSchedules(ctx context.Context) ([]dto.DayScheduleResponse, error)
	ListDoctorSchedules(ctx context.Context, doctorID uuid.UUID) ([]dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id int) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	doctorRepo   repository.DoctorRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	doctorRepo repository.DoctorRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
	}
}

func (u *scheduleUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if !entity.ValidHari(req.Hari) {
		return nil, ErrInvalidHari
	}
	if req.JamSelesai <= req.JamMulai {
		return nil, ErrInvalidTimeRange
	}

	doctorID, err := uuid.Parse(req.DokterID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedule := &entity.Schedule{
		DokterID:   doctorID,
		Hari:       req.Hari,
		JamMulai:   req.JamMulai,
		JamSelesai: req.JamSelesai,
		Aktif:      req.Aktif,
	}
	if schedule.Aktif == nil {
		active := true
		schedule.Aktif = &active
	}

	if err := u.scheduleRepo.Create(u.db.WithContext(ctx), schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	schedule.Dokter = *doctor
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) ListSchedules(ctx context.Context) ([]dto.ScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list schedules: %+v", err)
		return nil, err
	}

	return converter.SchedulesToResponses(schedules), nil
}

// ListPublicSchedules returns active slots of active doctors grouped by day,
// the shape the marketing site renders.
func (u *scheduleUsecase) ListPublicSchedules(ctx context.Context) ([]dto.DayScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active schedules: %+v", err)
		return nil, err
	}

	return converter.SchedulesToDayResponses(schedules), nil
}

func (u *scheduleUsecase) ListDoctorSchedules(ctx context.Context, doctorID uuid.UUID) ([]dto.ScheduleResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}

	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor schedules: %+v", err)
		return nil, err
	}

	return converter.SchedulesToResponses(schedules), nil
}

func (u *scheduleUsecase) UpdateSchedule(ctx context.Context, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if req.Hari != nil {
		if !entity.ValidHari(*req.Hari) {
			return nil, ErrInvalidHari
		}
		schedule.Hari = *req.Hari
	}
	if req.JamMulai != nil {
		schedule.JamMulai = *req.JamMulai
	}
	if req.JamSelesai != nil {
		schedule.JamSelesai = *req.JamSelesai
	}
	if schedule.JamSelesai <= schedule.JamMulai {
		return nil, ErrInvalidTimeRange
	}
	if req.Aktif != nil {
		schedule.Aktif = req.Aktif
	}

	if err := u.scheduleRepo.Update(u.db.WithContext(ctx), schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, id int) error {
	affected, err := u.scheduleRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
