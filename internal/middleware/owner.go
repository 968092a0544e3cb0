package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adboard/adboard/internal/auth"
)

// Ownership error messages.
const (
	msgAccessDenied = "access denied!"
	msgOwnerOnly    = "access for owner only!"
)

// RequireOwner returns middleware that enforces the ownership rule:
// the authenticated user's id must equal the user_id route parameter.
// Must be applied after Auth middleware. The check runs before the
// target resource is even looked up, so a wrong owner always gets 403
// regardless of whether the resource exists.
func RequireOwner() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := auth.IdentityFromContext(r.Context())
			if identity == nil {
				writeError(w, http.StatusForbidden, msgAccessDenied)
				return
			}

			userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
			if err != nil {
				writeError(w, http.StatusForbidden, msgAccessDenied)
				return
			}

			if identity.UserID != userID {
				writeError(w, http.StatusForbidden, msgOwnerOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
