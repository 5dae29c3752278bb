package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/types"
)

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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Store владеет незавершенными заявками на бронирование (BookingRequest)
//
// Заявка создается, когда клиент начинает процесс бронирования, изменяется
// по мере прохождения шагов и удаляется при уходе со страницы, истечении
// TTL или успешном подтверждении. Заявки живут только в памяти процесса -
// в хранилище попадает уже подтвержденное бронирование.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*domain.BookingRequest

	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewStore создает хранилище сессий бронирования
func NewStore(ttl time.Duration, logger Logger) *Store {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	return &Store{
		sessions:     make(map[string]*domain.BookingRequest),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create начинает новую сессию бронирования с выбранными услугами
func (s *Store) Create(services []domain.ServiceSelection) (*domain.BookingRequest, error) {
	if len(services) == 0 {
		return nil, ErrNoServices
	}
	if len(services) > domain.MaxServicesPerBooking {
		return nil, fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}
	for _, svc := range services {
		if svc.DurationMinutes < domain.MinDurationMinutes || svc.DurationMinutes > domain.MaxDurationMinutes {
			return nil, fmt.Errorf("%w: service duration %d out of range", ErrInvalidInput, svc.DurationMinutes)
		}
		if svc.Price < 0 {
			return nil, fmt.Errorf("%w: negative price", ErrInvalidInput)
		}
	}

	now := s.timeProvider.Now()
	req := &domain.BookingRequest{
		SessionID: uuid.NewString(),
		Services:  append([]domain.ServiceSelection(nil), services...),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[req.SessionID] = req
	s.mu.Unlock()

	s.logger.Info("Create: booking session %s started, %d services, total %d min",
		req.SessionID, len(req.Services), req.TotalDuration())

	return s.snapshot(req), nil
}

// Get возвращает снимок сессии по ID
func (s *Store) Get(sessionID string) (*domain.BookingRequest, error) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.getLocked(sessionID, now)
	if err != nil {
		return nil, err
	}
	return s.snapshot(req), nil
}

// SetSchedule фиксирует выбранные клиентом дату, время и связанный холд
func (s *Store) SetSchedule(sessionID string, date time.Time, startTime types.TimeString, holdID string) error {
	now := s.timeProvider.Now()
	day := domain.DateOnly(date)

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.getLocked(sessionID, now)
	if err != nil {
		return err
	}

	req.SelectedDate = &day
	req.SelectedTime = &startTime
	if holdID != "" {
		req.HoldID = &holdID
	}
	req.UpdatedAt = now

	return nil
}

// SetCustomer фиксирует контактные данные клиента
func (s *Store) SetCustomer(sessionID string, customer domain.Customer) error {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)

	if customer.Name == "" || customer.Phone == "" {
		return fmt.Errorf("%w: customer name and phone are required", ErrInvalidInput)
	}
	if len(customer.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name too long", ErrInvalidInput)
	}
	if customer.Notes != nil && len(*customer.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.getLocked(sessionID, now)
	if err != nil {
		return err
	}

	req.Customer = &customer
	req.UpdatedAt = now

	return nil
}

// Discard удаляет сессию. Идемпотентна: удаление неизвестной сессии - no-op.
// Возвращает ID холда сессии (если был), чтобы вызывающий снял и его.
func (s *Store) Discard(sessionID string) (holdID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.sessions[sessionID]
	if !ok {
		return ""
	}
	delete(s.sessions, sessionID)

	s.logger.Info("Discard: booking session %s discarded", sessionID)

	if req.HoldID != nil {
		return *req.HoldID
	}
	return ""
}

// Expire удаляет все истекшие сессии и возвращает ID их холдов
// Холды истекают по собственному TTL, но снятие здесь освобождает слоты раньше
func (s *Store) Expire(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	holdIDs := make([]string, 0)
	for id, req := range s.sessions {
		if !req.IsExpired(now) {
			continue
		}
		if req.HoldID != nil {
			holdIDs = append(holdIDs, *req.HoldID)
		}
		delete(s.sessions, id)
	}

	if len(holdIDs) > 0 {
		s.logger.Info("Expire: purged %d expired sessions with holds", len(holdIDs))
	}
	return holdIDs
}

// Count возвращает количество сессий в памяти
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// getLocked возвращает сессию по ID; вызывается под мьютексом
func (s *Store) getLocked(sessionID string, now time.Time) (*domain.BookingRequest, error) {
	req, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if req.IsExpired(now) {
		delete(s.sessions, sessionID)
		return nil, ErrSessionExpired
	}
	return req, nil
}

// snapshot возвращает копию сессии для чтения вызывающим
func (s *Store) snapshot(req *domain.BookingRequest) *domain.BookingRequest {
	copied := *req
	copied.Services = append([]domain.ServiceSelection(nil), req.Services...)
	if req.Customer != nil {
		customer := *req.Customer
		copied.Customer = &customer
	}
	return &copied
}
