package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound возвращается, когда запись с указанным идентификатором
// отсутствует (в том числе когда UPDATE не затронул ни одной строки).
var ErrNotFound = errors.New("record not found")

// IsNotFound распознаёт и наш sentinel, и ошибку GORM.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
