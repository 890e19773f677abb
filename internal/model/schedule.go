package model

import "time"

// Статусы участия события в наборе активных напоминаний.
// Переходы cancelled/completed зарезервированы на будущее.
const (
	ScheduleStatusActive    = "active"
	ScheduleStatusCancelled = "cancelled"
	ScheduleStatusCompleted = "completed"
)

// schedules
type Schedule struct {
	ScheduleID int64 `gorm:"primaryKey;autoIncrement;column:schedule_id"`

	UserID  int64 `gorm:"not null;index;column:user_id"`
	EventID int64 `gorm:"not null;index;column:event_id"`

	Status string `gorm:"type:varchar(32);not null;default:'active'"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User  *User  `gorm:"foreignKey:UserID;references:UserID"`
	Event *Event `gorm:"foreignKey:EventID;references:EventID"`
}
