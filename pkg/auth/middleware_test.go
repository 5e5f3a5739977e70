package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type staticRoles map[string]string

func (s staticRoles) ResolveRole(_ context.Context, userID string) (string, error) {
	role, ok := s[userID]
	if !ok {
		return "", errors.New("profile lookup failed")
	}
	return role, nil
}

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		role, _ := r.Context().Value(RoleKey).(string)
		w.Header().Set("X-User", userID)
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	roles := staticRoles{"u-1": "user"}
	valid, _ := jwtService.GenerateJWT("u-1", time.Now().Add(time.Hour))
	orphan, _ := jwtService.GenerateJWT("u-404", time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
	}{
		{
			name:       "Bearer header",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "Session cookie",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: valid}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "No credentials",
			setup:      func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Garbage token",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Role lookup fails",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+orphan) },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			AuthMiddleware(jwtService, roles)(echoHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "u-1", rec.Header().Get("X-User"))
				assert.Equal(t, "user", rec.Header().Get("X-Role"))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "Admin allowed", role: "admin", wantStatus: http.StatusOK},
		{name: "Moderator allowed", role: "moderator", wantStatus: http.StatusOK},
		{name: "User forbidden", role: "user", wantStatus: http.StatusForbidden},
		{name: "Anonymous", role: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != "" {
				req = req.WithContext(context.WithValue(req.Context(), RoleKey, tt.role))
			}
			rec := httptest.NewRecorder()

			RequireRole("admin", "moderator")(echoHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
