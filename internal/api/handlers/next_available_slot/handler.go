package next_available_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
	"github.com/nvbit/SLN-SlotService/internal/domain"
	nextAvailableSlot "github.com/nvbit/SLN-SlotService/internal/usecase/next_available_slot"
)

const (
	msgMissingFrom      = "дата начала поиска обязательна"
	msgInvalidParams    = "некорректные параметры запроса"
	msgNoAvailability   = "свободных слотов в пределах горизонта поиска нет"
	msgStoreUnavailable = "сервис бронирования временно недоступен"
)

// NextSlotResponse HTTP response model
type NextSlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

type Handler struct {
	useCase NextAvailableSlotUseCase
	logger  Logger
}

func NewHandler(useCase NextAvailableSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salon/next-available-slot
// Query params: from (required, YYYY-MM-DD), duration (required, minutes),
// horizon (optional, days)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	if fromStr == "" {
		h.logger.Warn("GET /salon/next-available-slot - Missing from date")
		handlers.RespondBadRequest(w, msgMissingFrom)
		return
	}

	fromDate, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /salon/next-available-slot - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil {
		h.logger.Warn("GET /salon/next-available-slot - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	horizon := 0
	if horizonStr := r.URL.Query().Get("horizon"); horizonStr != "" {
		horizon, err = strconv.Atoi(horizonStr)
		if err != nil {
			h.logger.Warn("GET /salon/next-available-slot - Invalid horizon: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &nextAvailableSlot.Request{
		FromDate:        fromDate,
		DurationMinutes: duration,
		HorizonDays:     horizon,
	})
	if err != nil {
		switch {
		case errors.Is(err, nextAvailableSlot.ErrNoAvailability):
			h.logger.Info("GET /salon/next-available-slot - No availability from %s", fromStr)
			handlers.RespondNotFound(w, msgNoAvailability)

		case errors.Is(err, nextAvailableSlot.ErrInvalidInput):
			h.logger.Warn("GET /salon/next-available-slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, nextAvailableSlot.ErrStoreUnavailable):
			h.logger.Error("GET /salon/next-available-slot - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /salon/next-available-slot - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salon/next-available-slot - Found %s %s",
		result.Date.Format(domain.DateFormat), result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, &NextSlotResponse{
		Date:      result.Date.Format(domain.DateFormat),
		StartTime: result.StartTime.String(),
	})
}
