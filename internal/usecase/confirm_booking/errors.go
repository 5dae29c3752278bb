package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия бронирования не найдена или истекла
	ErrSessionNotFound = errors.New("confirm_booking: booking session not found")

	// ErrNoSlotSelected возвращается при подтверждении без выбранного слота
	ErrNoSlotSelected = errors.New("confirm_booking: no slot selected")

	// ErrHoldExpired возвращается, когда холд истек до подтверждения
	// Повторять запись нельзя - клиент должен перезапросить доступность
	ErrHoldExpired = errors.New("confirm_booking: hold has expired")

	// ErrSlotConflict возвращается, когда слот успел занять другой клиент
	// Повторять запись нельзя - клиент должен перезапросить доступность
	ErrSlotConflict = errors.New("confirm_booking: slot taken by another booking")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("confirm_booking: reservation store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
