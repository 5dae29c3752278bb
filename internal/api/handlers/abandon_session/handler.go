package abandon_session

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
)

const msgMissingSessionID = "ID сессии обязателен"

type Handler struct {
	sessions SessionStore
	holds    HoldManager
	logger   Logger
}

func NewHandler(sessions SessionStore, holds HoldManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		holds:    holds,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
// Операция идемпотентна: повторный отказ от сессии - тоже 204
// Холд, привязанный к сессии, снимается вместе с ней
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("DELETE /sessions - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	if holdID := h.sessions.Discard(sessionID); holdID != "" {
		h.holds.Release(holdID)
	}

	h.logger.Info("DELETE /sessions/%s - Session discarded", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
