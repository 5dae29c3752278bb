package holds

import "time"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder интерфейс для метрик жизненного цикла холдов
// nil-реализация допустима: менеджер проверяет recorder перед вызовом
type Recorder interface {
	HoldAcquired()
	HoldReleased()
	HoldsExpired(count int)
	HoldPromoted()
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
