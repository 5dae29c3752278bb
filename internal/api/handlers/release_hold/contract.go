package release_hold

// HoldManager интерфейс менеджера временных холдов
type HoldManager interface {
	Release(holdID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
