package model

import "time"

// Категории событий, предлагаемые интерфейсом. В хранилище категория —
// произвольная строка, закрытого enum на этом уровне нет.
const (
	CategoryWork     = "Work"
	CategoryPersonal = "Personal"
	CategoryFamily   = "Family"
	CategoryFriends  = "Friends"
	CategoryOther    = "Other"
)

// events
type Event struct {
	EventID int64 `gorm:"primaryKey;autoIncrement;column:event_id"`

	EventName   string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	// Дата и время хранятся раздельно, как вводит пользователь:
	// дата ISO "YYYY-MM-DD", время "HH:MM" (24ч). Часовой пояс не хранится,
	// все вычисления идут в локальном времени устройства.
	EventDate string `gorm:"type:varchar(10);not null;index"`
	EventTime string `gorm:"type:varchar(5);not null"`

	// Символьная метка упреждения будильника ("5 mins before" и т.п.).
	NotifTime string `gorm:"type:varchar(32);not null"`

	// Выставляется шагом подтверждения доставки; при создании всегда false.
	NotifSent bool `gorm:"not null;default:false"`

	Category string `gorm:"type:varchar(64);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
