// Package store реализует шлюз к локальному хранилищу: бутстрап схемы,
// CRUD по четырём сущностям и дисциплину консистентности "полная
// перезагрузка после каждой записи".
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/remindcal/internal/model"
	"github.com/example/remindcal/internal/repository"
)

// ErrNotReady возвращается любой операцией, вызванной до завершения
// Initialize. Операции не ставятся в очередь — вызывающий обязан
// блокировать взаимодействие по флагу Ready.
var ErrNotReady = errors.New("store is not initialized")

// Store владеет соединением с хранилищем и in-memory снимком четырёх
// проекций. Снимок никогда не правится инкрементально: после каждой
// мутации он перечитывается целиком, поэтому расхождения между кэшем и
// базой исключены.
type Store struct {
	db  *gorm.DB
	log *zap.Logger

	events        repository.EventRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	schedules     repository.ScheduleRepository

	mu            sync.RWMutex
	ready         bool
	snapEvents    []model.Event
	snapUsers     []model.User
	snapNotifs    []model.Notification
	snapSchedules []model.Schedule
}

func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{
		db:            db,
		log:           log,
		events:        repository.NewGormEventRepository(db),
		users:         repository.NewGormUserRepository(db),
		notifications: repository.NewGormNotificationRepository(db),
		schedules:     repository.NewGormScheduleRepository(db),
	}
}

// Initialize идемпотентно создаёт таблицы и публикует первый снимок.
// Вызывается один раз за время жизни процесса до любых других операций.
func (s *Store) Initialize(ctx context.Context) error {
	if s.Ready() {
		return nil
	}

	if err := model.AutoMigrate(s.db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	if err := s.reload(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	s.log.Info("store initialized")
	return nil
}

// Ready сообщает, завершился ли бутстрап схемы.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Store) guard() error {
	if !s.Ready() {
		return ErrNotReady
	}
	return nil
}

// CreateEvent вставляет событие и возвращает присвоенный идентификатор.
func (s *Store) CreateEvent(ctx context.Context, event *model.Event) (int64, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return 0, err
	}
	if err := s.reload(ctx); err != nil {
		return 0, err
	}
	return event.EventID, nil
}

// UpdateEvent полностью заменяет изменяемые поля события.
func (s *Store) UpdateEvent(ctx context.Context, eventID int64, event *model.Event) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.events.Update(ctx, eventID, event); err != nil {
		return err
	}
	return s.reload(ctx)
}

// DeleteEvent удаляет событие. Отсутствующий идентификатор — no-op;
// зависимые записи notifications/schedules не каскадируются.
func (s *Store) DeleteEvent(ctx context.Context, eventID int64) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, eventID); err != nil {
		return err
	}
	return s.reload(ctx)
}

// EventsByDate возвращает события одной календарной даты по возрастанию
// event_time.
func (s *Store) EventsByDate(ctx context.Context, date string) ([]model.Event, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.events.ListByDate(ctx, date)
}

// CreateUser вставляет пользователя и возвращает идентификатор.
func (s *Store) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}
	if err := s.reload(ctx); err != nil {
		return 0, err
	}
	return user.UserID, nil
}

// FindUserByUsername нужен сервису регистрации; снимок для точечного
// поиска не используется.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.users.FindByUsername(ctx, username)
}

// CreateNotification вставляет запись о намерении уведомить.
func (s *Store) CreateNotification(ctx context.Context, n *model.Notification) (int64, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return 0, err
	}
	if err := s.reload(ctx); err != nil {
		return 0, err
	}
	return n.NotificationID, nil
}

// CreateSchedule включает событие в набор активных напоминаний.
func (s *Store) CreateSchedule(ctx context.Context, sch *model.Schedule) (int64, error) {
	if err := s.guard(); err != nil {
		return 0, err
	}
	if err := s.schedules.Create(ctx, sch); err != nil {
		return 0, err
	}
	if err := s.reload(ctx); err != nil {
		return 0, err
	}
	return sch.ScheduleID, nil
}

// ReloadAll перечитывает все четыре таблицы и публикует их как текущий
// снимок. Все мутирующие методы выше заканчиваются этим же вызовом.
func (s *Store) ReloadAll(ctx context.Context) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.reload(ctx)
}

func (s *Store) reload(ctx context.Context) error {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("reload events: %w", err)
	}
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("reload users: %w", err)
	}
	notifs, err := s.notifications.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("reload notifications: %w", err)
	}
	schedules, err := s.schedules.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("reload schedules: %w", err)
	}

	s.mu.Lock()
	s.snapEvents = events
	s.snapUsers = users
	s.snapNotifs = notifs
	s.snapSchedules = schedules
	s.mu.Unlock()

	return nil
}

// Events возвращает копию снимка событий, упорядоченных по
// (event_date, event_time).
func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, len(s.snapEvents))
	copy(out, s.snapEvents)
	return out
}

// Users возвращает копию снимка пользователей.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.snapUsers))
	copy(out, s.snapUsers)
	return out
}

// Notifications возвращает копию снимка записей об уведомлениях.
func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Notification, len(s.snapNotifs))
	copy(out, s.snapNotifs)
	return out
}

// Schedules возвращает копию снимка записей активных напоминаний.
func (s *Store) Schedules() []model.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Schedule, len(s.snapSchedules))
	copy(out, s.snapSchedules)
	return out
}
