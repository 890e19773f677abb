package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей календарного ядра.
// Только создание недостающих таблиц/колонок, без разрушающих изменений.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Event{},
		&Notification{},
		&Schedule{},
	)
}
