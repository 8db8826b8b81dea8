package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/outpost-paintball/booking-service/internal/api/handlers"
)

// Logger is the logging interface for middleware.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth guards the admin subrouter with a static bearer token
// configured server-side. Comparison is constant-time.
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || presented == "" {
				logger.Warn("AdminAuth: missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "missing bearer token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				logger.Warn("AdminAuth: invalid bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid bearer token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
