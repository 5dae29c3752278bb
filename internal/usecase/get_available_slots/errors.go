package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDuration возвращается при неположительной длительности
	ErrInvalidDuration = errors.New("get_available_slots: duration must be positive")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	// Слоты при этом НЕ показываются свободными - дата считается занятой
	ErrStoreUnavailable = errors.New("get_available_slots: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
