package notify

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type timerEntry struct {
	content Content
	at      time.Time
	timer   *time.Timer
}

// TimerNotifier — реестр одноразовых таймеров внутри процесса.
// Это терминальная замена сервиса уведомлений устройства: сработавший
// таймер печатается в лог (и в OnFire, если задан), а не на экран
// телефона. Реестр живёт только до завершения процесса.
type TimerNotifier struct {
	log *zap.Logger
	now func() time.Time

	// OnFire вызывается при срабатывании таймера уже после удаления
	// записи из реестра. Используется режимом watch для печати
	// напоминания в терминал.
	OnFire func(Scheduled)

	mu     sync.Mutex
	timers map[string]*timerEntry
}

var _ Notifier = (*TimerNotifier)(nil)

func NewTimerNotifier(log *zap.Logger) *TimerNotifier {
	// Одноразовое сообщение вместо запроса разрешений платформы:
	// доставка возможна только пока процесс жив.
	log.Info("notification delivery is in-process only; reminders fire while the process is running")
	return &TimerNotifier{
		log:    log,
		now:    time.Now,
		timers: make(map[string]*timerEntry),
	}
}

func (t *TimerNotifier) ScheduleOneShot(ctx context.Context, content Content, at time.Time) (string, error) {
	now := t.now()
	if !at.After(now) {
		t.log.Warn("alarm time is in the past, not scheduling",
			zap.String("title", content.Title),
			zap.Time("at", at))
		return "", nil
	}

	id := uuid.NewString()

	t.mu.Lock()
	entry := &timerEntry{content: content, at: at}
	entry.timer = time.AfterFunc(at.Sub(now), func() { t.fire(id) })
	t.timers[id] = entry
	t.mu.Unlock()

	t.log.Info("notification scheduled",
		zap.String("id", id),
		zap.String("title", content.Title),
		zap.Time("at", at))
	return id, nil
}

func (t *TimerNotifier) fire(id string) {
	t.mu.Lock()
	entry, ok := t.timers[id]
	if ok {
		delete(t.timers, id)
	}
	t.mu.Unlock()
	if !ok {
		return
	}

	t.log.Info("reminder fired",
		zap.String("id", id),
		zap.String("title", entry.content.Title),
		zap.String("body", entry.content.Body))

	if t.OnFire != nil {
		t.OnFire(Scheduled{ID: id, Content: entry.content, At: entry.at})
	}
}

func (t *TimerNotifier) Cancel(ctx context.Context, id string) error {
	t.mu.Lock()
	entry, ok := t.timers[id]
	if ok {
		entry.timer.Stop()
		delete(t.timers, id)
	}
	t.mu.Unlock()

	if ok {
		t.log.Info("notification cancelled", zap.String("id", id))
	}
	return nil
}

func (t *TimerNotifier) CancelAll(ctx context.Context) error {
	t.mu.Lock()
	for id, entry := range t.timers {
		entry.timer.Stop()
		delete(t.timers, id)
	}
	t.mu.Unlock()

	t.log.Info("all notifications cancelled")
	return nil
}

func (t *TimerNotifier) ListScheduled(ctx context.Context) ([]Scheduled, error) {
	t.mu.Lock()
	out := make([]Scheduled, 0, len(t.timers))
	for id, entry := range t.timers {
		out = append(out, Scheduled{ID: id, Content: entry.content, At: entry.at})
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out, nil
}
