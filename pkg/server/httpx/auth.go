package httpx

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vulntor/wifiscan/pkg/config"
	"github.com/vulntor/wifiscan/pkg/server/api"
)

// Auth returns a middleware that enforces token-based authentication.
//
// Behavior:
//   - Only API paths (/scan, /metrics, /api/...) are protected; health endpoints and
//     the static scanner page stay public
//   - In "none" mode (cfg.Auth.Mode="none"), skips authentication
//   - In "token" mode, validates Authorization: Bearer <token> header
//   - Returns 401 Unauthorized with JSON error if auth fails
//
// Example header: Authorization: Bearer secret-token-12345
func Auth(cfg config.ServerConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Auth.Mode == "none" || cfg.Auth.Mode == "" || !isProtectedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if cfg.Auth.Mode != "token" {
				log.Error().
					Str("component", "auth").
					Str("mode", cfg.Auth.Mode).
					Msg("Unknown auth mode")
				writeUnauthorized(w, "Authentication configuration error")
				return
			}

			// CORS preflight never carries credentials
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				log.Warn().
					Str("component", "auth").
					Str("path", r.URL.Path).
					Msg("Missing authorization header")
				writeUnauthorized(w, "Missing authorization header")
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Auth.Token)) != 1 {
				log.Warn().
					Str("component", "auth").
					Str("path", r.URL.Path).
					Msg("Invalid token")
				writeUnauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isProtectedPath reports whether path is an API or metrics route.
func isProtectedPath(path string) bool {
	return path == "/scan" || path == "/metrics" || strings.HasPrefix(path, "/api/")
}

// extractBearerToken extracts the token from Authorization: Bearer <token> header
func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="wifiscan"`)
	api.WriteJSONError(w, http.StatusUnauthorized, "Unauthorized", message)
}
