package holds

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/internal/service/availability"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// Manager владеет множеством временных холдов на слоты
//
// Холд дает клиенту краткую эксклюзивную заявку на слот, пока он заполняет
// форму бронирования, чтобы два клиента не довели до конца бронирование
// одного и того же слота. Новый холд виден проверкам доступности синхронно,
// в том же процессе.
//
// Холды живут только в памяти этого процесса. Авторитетная защита от
// двойного бронирования - уникальный индекс в хранилище при создании
// подтвержденного бронирования; холды лишь улучшают UX быстрым локальным
// откликом.
type Manager struct {
	mu    sync.Mutex
	holds map[string]*domain.Hold

	ttl           time.Duration
	sweepInterval time.Duration
	timeProvider  TimeProvider
	logger        Logger
	recorder      Recorder

	stopCh    chan struct{}
	stopOnce  sync.Once
	startOnce sync.Once
	doneCh    chan struct{}
	started   bool
}

// NewManager создает менеджер холдов
// ttl - время жизни холда по умолчанию, sweepInterval - период фоновой очистки
// recorder может быть nil, если метрики выключены
func NewManager(ttl, sweepInterval time.Duration, logger Logger, recorder Recorder) *Manager {
	if ttl <= 0 {
		ttl = domain.DefaultHoldTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = domain.DefaultSweepInterval
	}
	return &Manager{
		holds:         make(map[string]*domain.Hold),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
		recorder:      recorder,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
}

// Acquire создает холд на слот с expiresAt = now + ttl
// ttl <= 0 означает TTL менеджера по умолчанию
// Слот, пересекающийся с активным холдом, захватить нельзя
func (m *Manager) Acquire(sessionID string, date time.Time, startTime types.TimeString, durationMinutes int, ttl time.Duration) (*domain.Hold, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: non-positive duration %d", ErrInvalidHold, durationMinutes)
	}
	if !startTime.Valid() {
		return nil, fmt.Errorf("%w: malformed start time %q", ErrInvalidHold, startTime)
	}
	if ttl <= 0 {
		ttl = m.ttl
	}

	now := m.timeProvider.Now()
	day := domain.DateOnly(date)

	m.mu.Lock()
	defer m.mu.Unlock()

	candidate := domain.TimeInterval{Start: startTime, DurationMinutes: durationMinutes}
	for _, h := range m.holds {
		if h.IsExpired(now) || !domain.SameDay(h.Date, day) {
			continue
		}
		if availability.Overlaps(candidate, h.Interval()) {
			return nil, ErrSlotHeld
		}
	}

	hold := &domain.Hold{
		ID:              uuid.NewString(),
		SessionID:       sessionID,
		Date:            day,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		ExpiresAt:       now.Add(ttl),
		CreatedAt:       now,
	}
	m.holds[hold.ID] = hold

	if m.recorder != nil {
		m.recorder.HoldAcquired()
	}
	m.logger.Info("Acquire: hold %s on %s %s (%d min) for session=%s, expires at %s",
		hold.ID, day.Format(domain.DateFormat), startTime, durationMinutes,
		sessionID, hold.ExpiresAt.Format(time.RFC3339))

	return hold, nil
}

// Get возвращает активный холд по ID
// Для отсутствующего холда возвращает ErrHoldNotFound, для истекшего - ErrHoldExpired
func (m *Manager) Get(holdID string) (*domain.Hold, error) {
	now := m.timeProvider.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	hold, ok := m.holds[holdID]
	if !ok {
		return nil, ErrHoldNotFound
	}
	if hold.IsExpired(now) {
		return nil, ErrHoldExpired
	}

	copied := *hold
	return &copied, nil
}

// Release снимает холд. Идемпотентна: повторное снятие, снятие истекшего
// или неизвестного холда - no-op, не ошибка.
func (m *Manager) Release(holdID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.holds[holdID]; !ok {
		return
	}
	delete(m.holds, holdID)

	if m.recorder != nil {
		m.recorder.HoldReleased()
	}
	m.logger.Info("Release: hold %s released", holdID)
}

// Promote снимает холд после успешного превращения в подтвержденное бронирование
// Вызывается только после того, как хранилище приняло запись
func (m *Manager) Promote(holdID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.holds[holdID]; !ok {
		return
	}
	delete(m.holds, holdID)

	if m.recorder != nil {
		m.recorder.HoldPromoted()
	}
	m.logger.Info("Promote: hold %s promoted into committed reservation", holdID)
}

// Expire удаляет все холды с expiresAt <= now и возвращает их количество
func (m *Manager) Expire(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	expired := 0
	for id, h := range m.holds {
		if h.IsExpired(now) {
			delete(m.holds, id)
			expired++
		}
	}

	if expired > 0 {
		if m.recorder != nil {
			m.recorder.HoldsExpired(expired)
		}
		m.logger.Info("Expire: purged %d expired holds", expired)
	}

	return expired
}

// ActiveIntervals возвращает интервалы всех активных холдов на дату
// Реализует availability.HoldSource: холды участвуют в проверке конфликтов
// наравне с подтвержденными бронированиями
func (m *Manager) ActiveIntervals(date time.Time, now time.Time) []domain.TimeInterval {
	m.mu.Lock()
	defer m.mu.Unlock()

	intervals := make([]domain.TimeInterval, 0)
	for _, h := range m.holds {
		if h.IsExpired(now) || !domain.SameDay(h.Date, date) {
			continue
		}
		intervals = append(intervals, h.Interval())
	}
	return intervals
}

// ActiveCount возвращает количество холдов в памяти (включая еще не выметенные истекшие)
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.holds)
}

// Start запускает фоновую очистку истекших холдов
// Очистка идет независимо от действий пользователей, чтобы брошенные
// бронирования не блокировали слот навсегда
func (m *Manager) Start() {
	m.startOnce.Do(func() {
		m.started = true

		go func() {
			defer close(m.doneCh)

			ticker := time.NewTicker(m.sweepInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					m.Expire(m.timeProvider.Now())
				case <-m.stopCh:
					return
				}
			}
		}()

		m.logger.Info("Start: hold sweep running every %s (ttl %s)", m.sweepInterval, m.ttl)
	})
}

// Stop останавливает фоновую очистку и дожидается ее завершения
// Повторный вызов и вызов без Start безопасны
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		if m.started {
			<-m.doneCh
		}
		m.logger.Info("Stop: hold sweep stopped")
	})
}
