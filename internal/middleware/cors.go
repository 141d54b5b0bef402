package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS wraps rs/cors with the gateway's single allowed frontend origin.
// Credentialed requests are allowed because the Authorization header carries
// the session token.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	origin := strings.TrimSpace(frontendURL)
	if origin == "" {
		origin = "http://localhost:3000"
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	return c.Handler
}
