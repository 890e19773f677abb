package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/remindcal/internal/model"
)

type EventRepository interface {
	// Создать событие; идентификатор присваивает хранилище.
	Create(ctx context.Context, event *model.Event) error
	// Полная замена изменяемых полей события, updated_at обновляется.
	Update(ctx context.Context, eventID int64, event *model.Event) error
	// Удалить событие по идентификатору. Отсутствующий id — no-op:
	// каскадов нет, зависимые записи не трогаются.
	Delete(ctx context.Context, eventID int64) error
	// События одной календарной даты, по возрастанию event_time.
	ListByDate(ctx context.Context, date string) ([]model.Event, error)
	// Все события, упорядоченные по (event_date, event_time).
	ListAll(ctx context.Context) ([]model.Event, error)
}

// Реализация на GORM.
type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Create(ctx context.Context, event *model.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *GormEventRepository) Update(ctx context.Context, eventID int64, event *model.Event) error {
	update := map[string]any{
		"event_name":  event.EventName,
		"description": event.Description,
		"event_date":  event.EventDate,
		"event_time":  event.EventTime,
		"notif_time":  event.NotifTime,
		"notif_sent":  event.NotifSent,
		"category":    event.Category,
	}

	tx := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("event_id = ?", eventID).
		Updates(update)
	if tx.Error != nil {
		return fmt.Errorf("update event %d: %w", eventID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("update event %d: %w", eventID, ErrNotFound)
	}
	return nil
}

func (r *GormEventRepository) Delete(ctx context.Context, eventID int64) error {
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&model.Event{}).Error; err != nil {
		return fmt.Errorf("delete event %d: %w", eventID, err)
	}
	return nil
}

func (r *GormEventRepository) ListByDate(ctx context.Context, date string) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("event_date = ?", date).
		Order("event_time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list events by date %s: %w", date, err)
	}
	return events, nil
}

func (r *GormEventRepository) ListAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Order("event_date").
		Order("event_time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
