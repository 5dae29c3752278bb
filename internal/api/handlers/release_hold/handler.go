package release_hold

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
)

const msgMissingHoldID = "ID холда обязателен"

type Handler struct {
	holds  HoldManager
	logger Logger
}

func NewHandler(holds HoldManager, logger Logger) *Handler {
	return &Handler{
		holds:  holds,
		logger: logger,
	}
}

// Handle DELETE /api/v1/holds/{holdId}
// Операция идемпотентна: повторное снятие или снятие истекшего холда - тоже 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	holdID := mux.Vars(r)["holdId"]
	if holdID == "" {
		h.logger.Warn("DELETE /holds - Missing hold ID")
		handlers.RespondBadRequest(w, msgMissingHoldID)
		return
	}

	h.holds.Release(holdID)

	h.logger.Info("DELETE /holds/%s - Hold released", holdID)
	w.WriteHeader(http.StatusNoContent)
}
