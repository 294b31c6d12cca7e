package middleware

import (
	"net/http"
	"strings"

	"github.com/atopal/blog-backend/internal/api/httpx"
	"github.com/atopal/blog-backend/internal/auth"
	"github.com/atopal/blog-backend/internal/authz"
)

// Identity resolves the Bearer access token into a Caller and stores it
// in the request context. A missing header yields the anonymous caller;
// public reads must still go through, so rejecting is left to the
// authorization layer. A header that is present but unusable is a 401
// outright.
type Identity struct {
	TM *auth.TokenManager
}

func NewIdentity(tm *auth.TokenManager) *Identity { return &Identity{TM: tm} }

func (m *Identity) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" {
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), authz.Anonymous)))
			return
		}
		if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing bearer token", nil)
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])
		claims, err := m.TM.ParseAccess(token)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "invalid access token", nil)
			return
		}
		caller := authz.Caller{ID: claims.UserID, Staff: claims.Staff, Authenticated: true}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}
