package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или уже закрыта
	ErrSessionNotFound = errors.New("session: booking session not found")

	// ErrSessionExpired возвращается при обращении к истекшей сессии
	ErrSessionExpired = errors.New("session: booking session has expired")

	// ErrNoServices возвращается при попытке начать бронирование без услуг
	ErrNoServices = errors.New("session: at least one service is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("session: invalid input data")
)
