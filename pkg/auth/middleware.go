package auth

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"

	SessionCookie = "session"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) (string, error)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// AuthMiddleware accepts a bearer token or the session cookie and stores the
// caller's id and role in the request context.
func AuthMiddleware(tokens TokenValidator, resolver RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}

			role, err := resolver.ResolveRole(r.Context(), claims.UserID)
			if err != nil {
				zap.L().Error("failed to resolve role", zap.Error(err), zap.String("user_id", claims.UserID))
				utils.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, RoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(RoleKey).(string)
			if !ok {
				utils.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !slices.Contains(roles, role) {
				utils.RespondWithError(w, r, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
