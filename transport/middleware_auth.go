package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/Sanushoffl/toteebags/application/user"
	"github.com/Sanushoffl/toteebags/constant"
	"github.com/Sanushoffl/toteebags/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware validates the token header the UIs attach and embeds the
// session subject into the request context. Public endpoints pass through.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get("token")
			if token == "" {
				// also accept the Authorization form
				auth := r.Header.Get("Authorization")
				if strings.HasPrefix(auth, "Bearer ") {
					token = strings.TrimPrefix(auth, "Bearer ")
				}
			}
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			subject, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if strings.HasPrefix(path, "/api/user/") {
		return true
	}
	// shop browsing is public, product writes are not
	if method == http.MethodGet && strings.HasPrefix(path, "/api/product/") {
		return true
	}

	return false
}
