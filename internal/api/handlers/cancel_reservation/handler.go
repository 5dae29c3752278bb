package cancel_reservation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
	cancelReservation "github.com/nvbit/SLN-SlotService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidBody          = "некорректное тело запроса"
	msgReservationNotFound  = "бронирование не найдено"
	msgCannotCancel         = "бронирование уже отменено или завершено"
	msgStoreUnavailable     = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
// Тело запроса опционально: причина отмены может отсутствовать
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["reservationId"]
	reservationID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/cancel - Invalid reservation ID: %s", idStr)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /reservations/%d/cancel - Invalid body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.useCase.Execute(r.Context(), ToUseCaseRequest(reservationID, &req)); err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/%d/cancel - Invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		case errors.Is(err, cancelReservation.ErrNotFound):
			h.logger.Warn("PATCH /reservations/%d/cancel - Not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/%d/cancel - Not cancellable", reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, cancelReservation.ErrStoreUnavailable):
			h.logger.Error("PATCH /reservations/%d/cancel - Store unavailable: %v", reservationID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /reservations/%d/cancel - Failed: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/%d/cancel - Reservation cancelled", reservationID)
	w.WriteHeader(http.StatusNoContent)
}
