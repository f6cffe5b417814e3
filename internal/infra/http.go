package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
)

const (
	headerUserUUID = "X-User-Uuid"
	headerUserRole = "X-User-Role"
)

// AuthInterceptorHTTP takes the caller identity set by the gateway. Requests
// without it are rejected.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := strings.TrimSpace(r.Header.Get(headerUserUUID))
		if userUUID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "missing user uuid"})
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		if role := strings.TrimSpace(r.Header.Get(headerUserRole)); role != "" {
			ctx = context.WithValue(ctx, config.KeyRole, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
