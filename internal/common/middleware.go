package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

// AuthMiddleware enforces a Bearer token and injects the caller's identity
// into the request context. Use it on protected subrouters only.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, usernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware injects identity when a valid token is present and
// lets anonymous callers through. Feed and single-sit reads use it: guests
// see public content only.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := claimsFromRequest(r); ok {
			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, usernameKey, claims.Username)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func claimsFromRequest(r *http.Request) (*Claims, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, false
	}

	// header = Bearer <token>
	parts := strings.Fields(header)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, false
	}

	claims, err := ValidToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// UserIDFromContext returns the authenticated caller id, or
// AnonymousUserID for guests.
func UserIDFromContext(ctx context.Context) uint64 {
	if id, ok := ctx.Value(userIDKey).(uint64); ok {
		return id
	}
	return AnonymousUserID
}
