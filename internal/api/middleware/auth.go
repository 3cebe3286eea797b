package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDHeader carries the authenticated user's ID, set by the gateway.
const UserIDHeader = "X-User-ID"

// Auth requires the X-User-ID header on every request of the subrouter and
// stores the parsed ID in the request context. The gateway authenticates;
// this service only identifies.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			respondUnauthorized(w, "missing "+UserIDHeader+" header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			respondUnauthorized(w, "invalid "+UserIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user's ID from the context.
// The second result is false outside the Auth middleware.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
