package model

import (
	"time"

	"gorm.io/datatypes"
)

// Статусы записи о намерении уведомить.
const (
	NotificationStatusPending   = "pending"
	NotificationStatusScheduled = "scheduled"
	NotificationStatusSent      = "sent"
)

// notifications — намерение доставить напоминание по событию.
// Запись не зависит от того, сработал ли реально таймер платформы.
type Notification struct {
	NotificationID int64 `gorm:"primaryKey;autoIncrement;column:notification_id"`

	UserID  int64 `gorm:"not null;index;column:user_id"`
	EventID int64 `gorm:"not null;index;column:event_id"`

	SentAt *time.Time `gorm:"column:sent_at"`

	Status string `gorm:"type:varchar(32);not null;default:'pending'"`

	// Полезная нагрузка запланированного уведомления: исходный заголовок
	// и ISO-момент события для последующей обработки.
	Payload datatypes.JSON `gorm:"type:json"`

	// Навигационные поля. Каскадов нет намеренно: удаление события
	// не трогает записи notifications/schedules.
	User  *User  `gorm:"foreignKey:UserID;references:UserID"`
	Event *Event `gorm:"foreignKey:EventID;references:EventID"`
}
