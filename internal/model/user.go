package model

import "time"

// users
type User struct {
	UserID int64 `gorm:"primaryKey;autoIncrement;column:user_id"`

	Username string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// Хеш пароля (bcrypt), не сам пароль.
	Password string `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
