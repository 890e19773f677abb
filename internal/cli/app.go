// Package cli — терминальный фронтенд конвейера напоминаний.
// Именно он отвечает за итоговые сообщения пользователю: сервисы
// возвращают комбинированный результат, а не текст.
package cli

import (
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/example/remindcal/internal/notify"
	"github.com/example/remindcal/internal/service"
	"github.com/example/remindcal/internal/store"
)

// App — зависимости команд, собранные корнем композиции.
type App struct {
	Planner  *service.PlannerService
	Identity *service.IdentityService
	Store    *store.Store
	Notifier *notify.TimerNotifier
	Log      *zap.Logger
}

// categoryColor подбирает цвет метки категории для вывода в терминал.
func categoryColor(category string) *color.Color {
	switch strings.ToLower(category) {
	case "work":
		return color.New(color.FgBlue)
	case "personal":
		return color.New(color.FgGreen)
	case "family":
		return color.New(color.FgYellow)
	case "friends":
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgWhite)
	}
}
