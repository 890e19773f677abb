package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/remindcal/internal/model"
)

type ScheduleRepository interface {
	// Включить событие в набор активных напоминаний.
	Create(ctx context.Context, s *model.Schedule) error
	// Перевести запись в другой статус (cancelled/completed).
	UpdateStatus(ctx context.Context, scheduleID int64, status string) error
	// Все записи, свежесозданные первыми.
	ListAll(ctx context.Context) ([]model.Schedule, error)
}

type GormScheduleRepository struct {
	db *gorm.DB
}

func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

func (r *GormScheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

func (r *GormScheduleRepository) UpdateStatus(ctx context.Context, scheduleID int64, status string) error {
	tx := r.db.WithContext(ctx).
		Model(&model.Schedule{}).
		Where("schedule_id = ?", scheduleID).
		Update("status", status)
	if tx.Error != nil {
		return fmt.Errorf("update schedule %d status: %w", scheduleID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("update schedule %d status: %w", scheduleID, ErrNotFound)
	}
	return nil
}

func (r *GormScheduleRepository) ListAll(ctx context.Context) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}
