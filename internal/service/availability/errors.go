package availability

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	// Движок при этом считает дату полностью занятой (fail-closed), а не свободной
	ErrStoreUnavailable = errors.New("availability: reservation store unavailable")

	// ErrNoAvailability возвращается, когда в пределах горизонта поиска нет свободных слотов
	ErrNoAvailability = errors.New("availability: no available slot within horizon")

	// ErrInvalidDuration возвращается при неположительной длительности
	ErrInvalidDuration = errors.New("availability: duration must be positive")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("availability: invalid date")
)
