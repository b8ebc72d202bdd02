package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/auth"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

type contextKey string

const claimsKey contextKey = "session-claims"

// Verifier validates a session token. *auth.Service satisfies it.
type Verifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticate rejects requests without a valid bearer token and injects the
// session claims into the request context.
func Authenticate(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondWithError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := v.Verify(token)
			if err != nil {
				respondError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// ClaimsFromContext returns the session claims set by Authenticate.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// requirePermission guards a handler behind one capability of the caller's
// role. It writes the error response itself and reports whether the caller
// may proceed.
func requirePermission(w http.ResponseWriter, r *http.Request, allowed func(user.Permissions) bool) (*auth.Claims, bool) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "missing session")
		return nil, false
	}
	if !allowed(user.PermissionsForRole(claims.Role)) {
		respondWithError(w, http.StatusForbidden, "insufficient permissions")
		return nil, false
	}
	return claims, true
}
