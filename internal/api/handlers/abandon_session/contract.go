package abandon_session

// SessionStore интерфейс хранилища сессий бронирования
type SessionStore interface {
	Discard(sessionID string) (holdID string)
}

// HoldManager интерфейс менеджера временных холдов
type HoldManager interface {
	Release(holdID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
