package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени (ожидается HH:MM)
var ErrInvalidTimeString = errors.New("invalid time string format")

// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
var ErrTimeOutOfRange = errors.New("time out of range")

const minutesPerDay = 24 * 60

// TimeString represents a time of day in "HH:MM" format.
// Used as the wire and storage format for slot start times.
// The boundary value "24:00" is allowed so that a working day can
// close exactly at midnight.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString валидирует строку формата HH:MM и создает TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if _, err := ts.minutes(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// minutes парсит значение и возвращает минуты с начала суток
// Разбор посимвольный: все четыре позиции обязаны быть цифрами,
// хвостовой мусор вида "09:3a" не принимается
func (t TimeString) minutes() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return h*60 + m, nil
}

// Minutes возвращает минуты с начала суток; для невалидного значения возвращает 0
func (t TimeString) Minutes() int {
	m, err := t.minutes()
	if err != nil {
		return 0
	}
	return m
}

// Valid reports whether the value is a well-formed HH:MM time of day.
func (t TimeString) Valid() bool {
	_, err := t.minutes()
	return err == nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на delta минут вперед
// Ошибка, если результат выходит за пределы суток
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + delta)
}

// IsBefore reports whether t is strictly before other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly after other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer for database storage.
func (t TimeString) Value() (driver.Value, error) {
	if _, err := t.minutes(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		ts, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = ts
	case []byte:
		ts, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = ts
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
	return nil
}
