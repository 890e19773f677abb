package calendar

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/example/remindcal/internal/model"
)

var (
	ErrInvalidDate = errors.New("invalid event date")
	ErrInvalidTime = errors.New("invalid event time")
)

// Форматы хранения: дата ISO без времени, время суток в 24ч.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseEventDate разбирает дату события из формата хранения "YYYY-MM-DD".
func ParseEventDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseEventTime разбирает время суток события из формата "HH:MM".
func ParseEventTime(s string) (hours, minutes int, err error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t.Hour(), t.Minute(), nil
}

// CombineDateTime склеивает дату "YYYY-MM-DD" и время "HH:MM" в один
// наивный локальный момент. Часовой пояс не хранится, поэтому всё идёт
// через time.Local.
func CombineDateTime(date, hhmm string) (time.Time, error) {
	day, err := ParseEventDate(date)
	if err != nil {
		return time.Time{}, err
	}
	h, m, err := ParseEventTime(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.Local), nil
}

// FormatEventTime форматирует момент события для текста уведомления,
// по образцу локализованной строки времени в интерфейсе.
func FormatEventTime(t time.Time) string {
	return t.Format("3:04:05 PM")
}

// FormatClock переводит "HH:MM" в 12-часовой вид для списка событий.
// Некорректное значение возвращается как есть.
func FormatClock(hhmm string) string {
	h, m, err := ParseEventTime(hhmm)
	if err != nil {
		return hhmm
	}
	t := time.Date(0, 1, 1, h, m, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// DaySection — события одного календарного дня для отображения списком.
type DaySection struct {
	// Дата дня в формате хранения "YYYY-MM-DD".
	Date string
	// Заголовок секции: "Today", "Tomorrow" или полная дата.
	Title string
	// События дня, упорядоченные по event_time.
	Events []model.Event
}

// GroupByDate группирует события по дате и возвращает секции в
// хронологическом порядке. Сегодняшний и завтрашний день подписываются
// "Today"/"Tomorrow" относительно now.
func GroupByDate(events []model.Event, now time.Time) []DaySection {
	if len(events) == 0 {
		return nil
	}

	byDate := make(map[string][]model.Event)
	for _, ev := range events {
		byDate[ev.EventDate] = append(byDate[ev.EventDate], ev)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// ISO-даты сортируются лексикографически.
	sort.Strings(dates)

	today := now.Format(DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(DateLayout)

	sections := make([]DaySection, 0, len(dates))
	for _, d := range dates {
		evs := byDate[d]
		sort.Slice(evs, func(i, j int) bool {
			return evs[i].EventTime < evs[j].EventTime
		})

		title := d
		switch d {
		case today:
			title = "Today"
		case tomorrow:
			title = "Tomorrow"
		default:
			if day, err := ParseEventDate(d); err == nil {
				title = day.Format("January 2, 2006")
			}
		}

		sections = append(sections, DaySection{Date: d, Title: title, Events: evs})
	}

	return sections
}
