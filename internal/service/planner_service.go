package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/example/remindcal/internal/alarm"
	"github.com/example/remindcal/internal/calendar"
	"github.com/example/remindcal/internal/model"
	"github.com/example/remindcal/internal/notify"
	"github.com/example/remindcal/internal/store"
)

// Неявный единственный пользователь текущего однопользовательского режима.
const defaultUserID int64 = 1

// SaveResult — комбинированный итог сохранения события.
// Вызывающий сам решает, как показать его пользователю.
type SaveResult struct {
	EventID int64
	// false — событие сохранено, но таймер не зарегистрирован
	// (момент будильника уже прошёл либо планирование не удалось).
	NotificationScheduled bool
	// Идентификатор таймера; пустой, если таймер не регистрировался.
	AlarmHandle string
}

// PlannerService — оркестратор конвейера "событие → напоминание":
// последовательно создаёт запись события, зависимые записи учёта и
// регистрирует одноразовый таймер.
type PlannerService struct {
	store    *store.Store
	notifier notify.Notifier
	log      *zap.Logger

	// Подменяется в тестах для детерминированной проверки "в прошлом".
	now func() time.Time
}

func NewPlannerService(st *store.Store, notifier notify.Notifier, log *zap.Logger) *PlannerService {
	return &PlannerService{
		store:    st,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// SaveEventWithReminder проводит событие через весь конвейер.
//
// Шаги идут строго по порядку, отката при частичном сбое нет:
//  1. валидация ввода — при ошибке ничего не пишется;
//  2. вставка события — сбой фатален, дальше ничего не выполняется;
//  3. запись notifications — сбой не фатален, событие уже сохранено;
//  4. запись schedules — аналогично;
//  5. вычисление момента будильника по метке упреждения;
//  6. регистрация таймера — момент в прошлом или сбой платформы
//     отражаются только флагом NotificationScheduled.
func (s *PlannerService) SaveEventWithReminder(ctx context.Context, in calendar.EventInput) (*SaveResult, error) {
	if err := calendar.ValidateEventInput(in); err != nil {
		return nil, err
	}

	event := &model.Event{
		EventName:   strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		EventDate:   in.Date,
		EventTime:   in.Time,
		NotifTime:   in.AlarmOffset,
		NotifSent:   false,
		Category:    in.Category,
	}

	eventID, err := s.store.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	s.log.Info("event saved", zap.Int64("event_id", eventID))

	// Ввод уже провалидирован, комбинирование может не получиться только
	// при рассинхроне форматов хранения.
	eventAt, err := calendar.CombineDateTime(in.Date, in.Time)
	if err != nil {
		return nil, fmt.Errorf("combine event datetime: %w", err)
	}
	content := notify.BuildContent(event.EventName, event.Description, eventAt)

	payload, _ := json.Marshal(content.Data)
	if _, err := s.store.CreateNotification(ctx, &model.Notification{
		UserID:  defaultUserID,
		EventID: eventID,
		Status:  model.NotificationStatusScheduled,
		Payload: datatypes.JSON(payload),
	}); err != nil {
		// Событие уже сохранено; зависимая запись не откатывает его.
		s.log.Warn("create notification record failed",
			zap.Int64("event_id", eventID), zap.Error(err))
	}

	if _, err := s.store.CreateSchedule(ctx, &model.Schedule{
		UserID:  defaultUserID,
		EventID: eventID,
		Status:  model.ScheduleStatusActive,
	}); err != nil {
		s.log.Warn("create schedule record failed",
			zap.Int64("event_id", eventID), zap.Error(err))
	}

	result := &SaveResult{EventID: eventID}

	alarmAt := alarm.Resolve(eventAt, in.AlarmOffset)
	if !alarmAt.After(s.now()) {
		// Прошедший момент будильника — не ошибка, а молчаливый пропуск.
		s.log.Warn("alarm time already passed, reminder skipped",
			zap.Int64("event_id", eventID), zap.Time("alarm_at", alarmAt))
		return result, nil
	}

	handle, err := s.notifier.ScheduleOneShot(ctx, content, alarmAt)
	if err != nil {
		s.log.Warn("schedule reminder failed",
			zap.Int64("event_id", eventID), zap.Error(err))
		return result, nil
	}
	if handle == "" {
		return result, nil
	}

	result.NotificationScheduled = true
	result.AlarmHandle = handle
	return result, nil
}

// UpdateEvent полностью заменяет изменяемые поля события.
// Перепланирование будильника при изменении даты/времени остаётся за
// вызывающим (через SaveEventWithReminder либо RescheduleUpcoming).
func (s *PlannerService) UpdateEvent(ctx context.Context, eventID int64, in calendar.EventInput) error {
	if err := calendar.ValidateEventInput(in); err != nil {
		return err
	}

	event := &model.Event{
		EventName:   strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		EventDate:   in.Date,
		EventTime:   in.Time,
		NotifTime:   in.AlarmOffset,
		NotifSent:   false,
		Category:    in.Category,
	}
	if err := s.store.UpdateEvent(ctx, eventID, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteEvent удаляет запись события. Зависимые записи и уже
// зарегистрированный таймер не трогаются.
func (s *PlannerService) DeleteEvent(ctx context.Context, eventID int64) error {
	if err := s.store.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// Agenda возвращает события одной даты по возрастанию времени.
func (s *PlannerService) Agenda(ctx context.Context, date string) ([]model.Event, error) {
	if _, err := calendar.ParseEventDate(date); err != nil {
		return nil, err
	}
	return s.store.EventsByDate(ctx, date)
}

// Events отдаёт текущий снимок ленты событий.
func (s *PlannerService) Events() []model.Event {
	return s.store.Events()
}

// ScheduledAlarms перечисляет ожидающие таймеры.
func (s *PlannerService) ScheduledAlarms(ctx context.Context) ([]notify.Scheduled, error) {
	return s.notifier.ListScheduled(ctx)
}

// CancelAlarm снимает один таймер по идентификатору.
func (s *PlannerService) CancelAlarm(ctx context.Context, handle string) error {
	return s.notifier.Cancel(ctx, handle)
}

// RescheduleUpcoming регистрирует таймеры для всех сохранённых событий,
// чей момент будильника ещё впереди. Используется режимом watch при
// старте процесса: реестр таймеров живёт только внутри процесса, после
// перезапуска его нужно наполнить заново. Возвращает число
// зарегистрированных таймеров.
func (s *PlannerService) RescheduleUpcoming(ctx context.Context) (int, error) {
	if err := s.store.ReloadAll(ctx); err != nil {
		return 0, err
	}

	count := 0
	for _, ev := range s.store.Events() {
		eventAt, err := calendar.CombineDateTime(ev.EventDate, ev.EventTime)
		if err != nil {
			s.log.Warn("stored event has malformed date/time, skipped",
				zap.Int64("event_id", ev.EventID), zap.Error(err))
			continue
		}
		alarmAt := alarm.Resolve(eventAt, ev.NotifTime)
		if !alarmAt.After(s.now()) {
			continue
		}

		content := notify.BuildContent(ev.EventName, ev.Description, eventAt)
		handle, err := s.notifier.ScheduleOneShot(ctx, content, alarmAt)
		if err != nil {
			s.log.Warn("reschedule reminder failed",
				zap.Int64("event_id", ev.EventID), zap.Error(err))
			continue
		}
		if handle != "" {
			count++
		}
	}
	return count, nil
}
