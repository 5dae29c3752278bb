package start_session

import (
	"errors"
	"net/http"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
	startSession "github.com/nvbit/SLN-SlotService/internal/usecase/start_session"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidServices = "некорректный список услуг"
)

type Handler struct {
	useCase StartSessionUseCase
	logger  Logger
}

func NewHandler(useCase StartSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(&req))
	if err != nil {
		switch {
		case errors.Is(err, startSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid services: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServices)

		default:
			h.logger.Error("POST /sessions - Failed to start session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session %s started", result.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
