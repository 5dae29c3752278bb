package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
	"github.com/nvbit/SLN-SlotService/internal/domain"
	getAvailableSlots "github.com/nvbit/SLN-SlotService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDuration  = "длительность обязательна"
	msgInvalidDuration  = "некорректная длительность"
	msgStoreUnavailable = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salon/available-slots
// Query params: date (required, YYYY-MM-DD), duration (required, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /salon/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationStr := r.URL.Query().Get("duration")
	if durationStr == "" {
		h.logger.Warn("GET /salon/available-slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /salon/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /salon/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration),
			errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /salon/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /salon/available-slots - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /salon/available-slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salon/available-slots - %d slots returned for %s",
		len(response.Slots), response.Date)
	handlers.RespondJSON(w, http.StatusOK, response)
}
