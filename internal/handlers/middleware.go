package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
)

type contextKey string

const userContextKey contextKey = "authUser"

type MiddlewareProvider struct {
	jwtProvider primary.JWTService
}

func NewMiddleware(jwtProvider primary.JWTService) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtProvider: jwtProvider,
	}
}

// JWTMiddleware rejects requests without a valid bearer token and stores the
// authenticated username in the request context.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		valid, err := m.jwtProvider.VerifyTokenHMAC(r.Context(), tokenString, "HS256")
		if err != nil || !valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		payload, err := m.jwtProvider.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil || payload.Username == "" {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, payload.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UsernameFrom returns the authenticated username, or "" when the request
// did not pass through JWTMiddleware.
func UsernameFrom(ctx context.Context) string {
	username, _ := ctx.Value(userContextKey).(string)
	return username
}
