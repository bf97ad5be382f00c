package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/service"
	"hospital-booking/pkg/jwt"
	"hospital-booking/pkg/response"
)

type contextKey string

const sessionKey contextKey = "session"

// Session is the authenticated caller, as carried by the token.
type Session struct {
	Role      string
	SubjectID string
	TokenID   string
}

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	sessions   service.SessionStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessions service.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil || !entity.IsValidRole(claims.Role) {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check if the session is still live (not logged out)
		exists, err := m.sessions.Exists(r.Context(), claims.Role, claims.SubjectID, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token", err)
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, Session{
			Role:      claims.Role,
			SubjectID: claims.SubjectID,
			TokenID:   claims.TokenID,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext extracts the caller set by Authenticate
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey).(Session)
	return session, ok
}
