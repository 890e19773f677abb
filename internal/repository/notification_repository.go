package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/remindcal/internal/model"
)

type NotificationRepository interface {
	// Создать запись о намерении уведомить.
	Create(ctx context.Context, n *model.Notification) error
	// Отметить доставку: status = sent, sent_at = текущий момент.
	MarkSent(ctx context.Context, notificationID int64) error
	// Все записи, свежедоставленные первыми.
	ListAll(ctx context.Context) ([]model.Notification, error)
}

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *GormNotificationRepository) MarkSent(ctx context.Context, notificationID int64) error {
	tx := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("notification_id = ?", notificationID).
		Updates(map[string]any{
			"status":  model.NotificationStatusSent,
			"sent_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if tx.Error != nil {
		return fmt.Errorf("mark notification %d sent: %w", notificationID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("mark notification %d sent: %w", notificationID, ErrNotFound)
	}
	return nil
}

func (r *GormNotificationRepository) ListAll(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Order("sent_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}
