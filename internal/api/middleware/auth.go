package middleware

import (
	"context"
	"net/http"

	"github.com/nvbit/SLN-SlotService/internal/api/handlers"
)

// SessionIDHeader заголовок с ID сессии бронирования
const SessionIDHeader = "X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Session требует наличия заголовка X-Session-ID и кладет его значение в контекст
// Сам ID непрозрачен для middleware - его валидность проверяет session store
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionIDHeader)
		if sessionID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-Session-ID")
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID извлекает ID сессии из контекста запроса
func SessionID(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}
