package next_available_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("next_available_slot: invalid input data")

	// ErrNoAvailability возвращается, когда в пределах горизонта нет свободных слотов
	ErrNoAvailability = errors.New("next_available_slot: no available slot within horizon")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("next_available_slot: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("next_available_slot: internal error")
)
