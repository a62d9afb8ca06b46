package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rewear/rewear-pos/pkg/utils"
)

type ContextKey string

const IdentityKey ContextKey = "identity"

const (
	RoleAdmin = "admin"
	RoleStaff = "mitarbeiter"
)

// Identity is the authenticated staff member attached to every mutating
// action. It is derived from the verified token, never from the payload.
type Identity struct {
	Username string
	Role     string
}

func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, Identity{
				Username: claims.Username,
				Role:     claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group on an exact role match.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := r.Context().Value(IdentityKey).(Identity)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if identity.Role != role {
				utils.RespondWithError(w, http.StatusForbidden, "Nur für Administratoren")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FromContext returns the authenticated identity of the request.
func FromContext(ctx context.Context) Identity {
	identity, _ := ctx.Value(IdentityKey).(Identity)
	return identity
}
