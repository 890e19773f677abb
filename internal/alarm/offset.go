// Package alarm отвечает за вычисление момента срабатывания будильника
// по символьной метке упреждения ("5 mins before" и т.п.).
package alarm

import "time"

// Закрытый набор меток упреждения, который предлагается пользователю.
const (
	Offset5Min  = "5 mins before"
	Offset10Min = "10 mins before"
	Offset15Min = "15 mins before"
	Offset1Hour = "1 hour before"
	Offset1Day  = "1 day before"
)

// Labels возвращает метки в порядке, в котором их показывает интерфейс.
func Labels() []string {
	return []string{Offset5Min, Offset10Min, Offset15Min, Offset1Hour, Offset1Day}
}

// Resolve возвращает момент срабатывания будильника для события eventAt.
// Неизвестная метка молча трактуется как "5 mins before" — это
// задокументированное поведение, а не ошибка.
//
// "1 day before" вычитает календарные сутки (AddDate), а не фиксированные
// 24 часа: результат корректен на границах месяцев и при переводе часов.
func Resolve(eventAt time.Time, label string) time.Time {
	switch label {
	case Offset10Min:
		return eventAt.Add(-10 * time.Minute)
	case Offset15Min:
		return eventAt.Add(-15 * time.Minute)
	case Offset1Hour:
		return eventAt.Add(-time.Hour)
	case Offset1Day:
		return eventAt.AddDate(0, 0, -1)
	case Offset5Min:
		return eventAt.Add(-5 * time.Minute)
	default:
		return eventAt.Add(-5 * time.Minute)
	}
}
