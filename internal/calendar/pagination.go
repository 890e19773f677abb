package calendar

import (
	"time"

	"github.com/example/remindcal/internal/model"
)

// Страница списка событий по умолчанию.
const defaultPageSize = 10

// EventPage — одна страница ленты событий плюс метаданные для навигации.
type EventPage struct {
	Sections []DaySection // события страницы, сгруппированные по дням
	Page     int          // номер страницы (с 1)
	PageSize int
	HasNext  bool
	HasPrev  bool
	Total    int // всего событий во всей ленте
}

// PaginateEvents режет упорядоченную ленту событий на страницы и группирует
// текущую страницу по дням. События должны быть уже отсортированы по
// (дата, время) — в таком виде их отдаёт хранилище. При некорректных
// page/pageSize используются дефолты; page нумеруется с 1.
func PaginateEvents(events []model.Event, page, pageSize int, now time.Time) EventPage {
	total := len(events)

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return EventPage{
		Sections: GroupByDate(events[start:end], now),
		Page:     page,
		PageSize: pageSize,
		HasNext:  end < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}
