package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrNotFound возвращается, когда бронирование не найдено
	ErrNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrCannotCancel возвращается, когда бронирование уже отменено или завершено
	ErrCannotCancel = errors.New("cancel_reservation: reservation cannot be cancelled")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("cancel_reservation: reservation store unavailable")
)
