package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
	"github.com/nvbit/SLN-SlotService/internal/api/middleware"
	confirmBooking "github.com/nvbit/SLN-SlotService/internal/usecase/confirm_booking"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidCustomer  = "некорректные контактные данные"
	msgSessionNotFound  = "сессия бронирования не найдена или истекла"
	msgNoSlotSelected   = "слот не выбран"
	msgHoldExpired      = "время резервирования слота истекло, выберите слот заново"
	msgSlotConflict     = "слот уже занят другим клиентом, выберите другой слот"
	msgStoreUnavailable = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Требует заголовок X-Session-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(sessionID, &req))
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid customer data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomer)

		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /bookings - Session %s not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrNoSlotSelected):
			h.logger.Warn("POST /bookings - No slot selected in session %s", sessionID)
			handlers.RespondConflict(w, msgNoSlotSelected)

		case errors.Is(err, confirmBooking.ErrHoldExpired):
			h.logger.Warn("POST /bookings - Hold expired for session %s", sessionID)
			handlers.RespondConflict(w, msgHoldExpired)

		case errors.Is(err, confirmBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict for session %s", sessionID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, confirmBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to confirm booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Reservation %d created for session %s",
		result.ReservationID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
