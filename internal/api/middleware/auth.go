package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/Ralle1976/botcrafter/internal/api/shared"
)

// AuthMiddleware guards routes with the static API token the worker bots
// are configured with. The token arrives in the Authorization header,
// either bare or with a "Bearer " prefix.
type AuthMiddleware struct {
	apiToken string
}

// NewAuthMiddleware creates a new AuthMiddleware checking against the
// given token.
func NewAuthMiddleware(apiToken string) *AuthMiddleware {
	return &AuthMiddleware{apiToken: apiToken}
}

// Authenticate rejects requests whose Authorization header does not match
// the configured token. The comparison is constant time, and the rejected
// body is the plain error envelope the bots expect.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.apiToken)) != 1 {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
