package get_customer_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
	customerReservations "github.com/nvbit/SLN-SlotService/internal/usecase/get_customer_reservations"
)

const (
	msgMissingPhone     = "телефон клиента обязателен"
	msgStoreUnavailable = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase GetCustomerReservationsUseCase
	logger  Logger
}

func NewHandler(useCase GetCustomerReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{phone}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]
	if phone == "" {
		h.logger.Warn("GET /customers/reservations - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &customerReservations.Request{Phone: phone})
	if err != nil {
		switch {
		case errors.Is(err, customerReservations.ErrInvalidInput):
			h.logger.Warn("GET /customers/%s/reservations - Invalid input: %v", phone, err)
			handlers.RespondBadRequest(w, msgMissingPhone)

		case errors.Is(err, customerReservations.ErrStoreUnavailable):
			h.logger.Error("GET /customers/%s/reservations - Store unavailable: %v", phone, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /customers/%s/reservations - Failed: %v", phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/%s/reservations - %d reservations",
		phone, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
