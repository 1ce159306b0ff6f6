package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows cross-origin requests from the given origins ("*" for any).
// Methods and headers match what the mini apps page and its clients use.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "HEAD", "PUT", "DELETE", "PATCH"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
