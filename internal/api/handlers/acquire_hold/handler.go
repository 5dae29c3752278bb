package acquire_hold

import (
	"errors"
	"net/http"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
	"github.com/nvbit/SLN-SlotService/internal/api/middleware"
	acquireHold "github.com/nvbit/SLN-SlotService/internal/usecase/acquire_hold"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidParams    = "некорректные дата или время"
	msgSessionNotFound  = "сессия бронирования не найдена или истекла"
	msgSalonClosed      = "салон закрыт в выбранную дату"
	msgSlotNotAvailable = "выбранный слот недоступен"
	msgStoreUnavailable = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase AcquireHoldUseCase
	logger  Logger
}

func NewHandler(useCase AcquireHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds
// Требует заголовок X-Session-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	var req AcquireHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(sessionID, &req)
	if err != nil {
		h.logger.Warn("POST /holds - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, acquireHold.ErrInvalidInput):
			h.logger.Warn("POST /holds - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, acquireHold.ErrSessionNotFound):
			h.logger.Warn("POST /holds - Session %s not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, acquireHold.ErrSalonClosed):
			h.logger.Warn("POST /holds - Salon closed on %s", req.Date)
			handlers.RespondConflict(w, msgSalonClosed)

		case errors.Is(err, acquireHold.ErrSlotNotAvailable):
			h.logger.Warn("POST /holds - Slot %s %s not available", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, acquireHold.ErrStoreUnavailable):
			h.logger.Error("POST /holds - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /holds - Failed to acquire hold: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds - Hold %s acquired for session %s", result.HoldID, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
