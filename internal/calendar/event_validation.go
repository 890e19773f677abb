package calendar

import (
	"errors"
	"strings"
)

// Ошибки валидации ввода события.
var (
	ErrEmptyTitle = errors.New("event title is required")
	ErrNoDate     = errors.New("event date is required")
)

// EventInput — провалидированные поля формы события.
// Презентационный слой собирает их и передаёт оркестратору как есть.
type EventInput struct {
	Title       string
	Description string
	// Дата "YYYY-MM-DD" и время "HH:MM".
	Date string
	Time string
	// Метка упреждения будильника.
	AlarmOffset string
	Category    string
}

// ValidateEventInput:
//   - проверяет, что заголовок не пуст после обрезки пробелов;
//   - проверяет, что дата выбрана и корректна;
//   - проверяет формат времени.
//
// Ошибка возвращается до любого обращения к хранилищу — частичного
// состояния при невалидном вводе не возникает.
func ValidateEventInput(in EventInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(in.Date) == "" {
		return ErrNoDate
	}
	if _, err := ParseEventDate(in.Date); err != nil {
		return err
	}
	if _, _, err := ParseEventTime(in.Time); err != nil {
		return err
	}
	return nil
}
