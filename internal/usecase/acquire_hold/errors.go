package acquire_hold

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("acquire_hold: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия бронирования не найдена или истекла
	ErrSessionNotFound = errors.New("acquire_hold: booking session not found")

	// ErrSalonClosed возвращается, когда салон закрыт в выбранную дату
	ErrSalonClosed = errors.New("acquire_hold: salon is closed on this date")

	// ErrSlotNotAvailable возвращается, когда слот занят или не существует
	ErrSlotNotAvailable = errors.New("acquire_hold: slot is not available")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("acquire_hold: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("acquire_hold: internal error")
)
