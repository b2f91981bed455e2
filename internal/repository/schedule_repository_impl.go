package repository

import (
	"errors"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Preload("Dokter").Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Where("dokter_id = ? AND aktif = ?", doctorID, true).
		Order("hari ASC, jam_mulai ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindAll(db *gorm.DB) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Preload("Dokter").
		Order("hari ASC, jam_mulai ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindAllActive(db *gorm.DB) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Preload("Dokter").
		Joins("JOIN dokter ON dokter.id = jadwal.dokter_id").
		Where("jadwal.aktif = ? AND dokter.aktif = ?", true, true).
		Order("jadwal.hari ASC, jadwal.jam_mulai ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Omit("Dokter").Save(schedule).Error
}

func (r *scheduleRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Schedule{})
	return result.RowsAffected, result.Error
}
