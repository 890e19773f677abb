// Package notify содержит порт одноразового таймера напоминаний и его
// in-process реализацию. Ядро зависит только от интерфейса, поэтому в
// тестах сервис работает с фейковой реализацией без реального времени.
package notify

import (
	"context"
	"time"

	"github.com/example/remindcal/internal/calendar"
)

// Ключи метаданных полезной нагрузки.
const (
	DataEventTitle = "eventTitle"
	DataEventTime  = "eventTime"
)

// Запасной текст напоминания, когда у события нет описания.
const defaultReminderBody = "Calendar event reminder"

// Content — содержимое запланированного уведомления.
type Content struct {
	Title string
	Body  string
	// Метаданные для последующей обработки: исходный заголовок события
	// и его момент в ISO-формате.
	Data map[string]string
}

// Scheduled — одно ожидающее уведомление.
type Scheduled struct {
	// Идентификатор, по которому уведомление можно отменить.
	ID      string
	Content Content
	// Момент срабатывания.
	At time.Time
}

// Notifier — абстракция сервиса уведомлений платформы.
type Notifier interface {
	// ScheduleOneShot регистрирует одноразовый таймер на момент at.
	// Пустой идентификатор без ошибки означает доброкачественный отказ
	// (например, момент уже в прошлом) — это не сбой планирования.
	ScheduleOneShot(ctx context.Context, content Content, at time.Time) (string, error)
	// Cancel снимает уведомление по идентификатору; неизвестный
	// идентификатор игнорируется.
	Cancel(ctx context.Context, id string) error
	CancelAll(ctx context.Context) error
	// ListScheduled возвращает ожидающие уведомления по возрастанию
	// момента срабатывания.
	ListScheduled(ctx context.Context) ([]Scheduled, error)
}

// BuildContent собирает содержимое напоминания по контракту нагрузки:
// заголовок с колокольчиком, тело из описания (или запасной фразы) и
// локализованного времени события.
func BuildContent(name, description string, eventAt time.Time) Content {
	body := description
	if body == "" {
		body = defaultReminderBody
	}
	return Content{
		Title: "🔔 " + name,
		Body:  body + "\nEvent at " + calendar.FormatEventTime(eventAt),
		Data: map[string]string{
			DataEventTitle: name,
			DataEventTime:  eventAt.Format(time.RFC3339),
		},
	}
}
