package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/benvon/identity-gateway/internal/auth"
	"github.com/benvon/identity-gateway/internal/request"
	"go.uber.org/zap"
)

// RequireAuth creates middleware enforcing hard authentication: any auth
// problem fails the request with the guard's fixed 401 status and message,
// before the handler (and so before any provider call) runs. On success the
// subject is attached to the request context.
func RequireAuth(guard *auth.Guard, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := guard.Authenticate(r.Header.Get("Authorization"), false)
			if err != nil {
				ge, ok := auth.IsGuardError(err)
				if !ok {
					ge = &auth.Error{Status: http.StatusUnauthorized, Message: "Unauthorized"}
				}
				logger.Debug("request_rejected_by_guard",
					zap.String("path", r.URL.Path),
					zap.String("reason", ge.Message),
				)
				respondGuardError(w, ge, logger)
				return
			}

			ctx := request.WithSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondGuardError(w http.ResponseWriter, ge *auth.Error, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ge.Status)

	response := map[string]any{
		"status":  "Unauthorized",
		"message": ge.Message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed_to_encode_error_response", zap.Error(err))
	}
}
