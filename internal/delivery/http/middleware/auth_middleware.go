package middleware

import (
	"errors"
	"strings"

	"placement-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxAdminIDKey  = "admin_id"
	CtxUsernameKey = "username"
)

type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Middleware admits requests carrying a valid admin access token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		who, err := m.tokens.VerifyAccess(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case errors.Is(err, jwt.ErrNoKey):
			return NewAppError(fiber.StatusInternalServerError, "Internal server error", nil, err)
		case err != nil:
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxAdminIDKey, who.ID)
		c.Locals(CtxUsernameKey, who.Username)

		return c.Next()
	}
}

// AdminFromCtx returns the admin stored by Middleware. ok is false on routes
// that are not behind it.
func AdminFromCtx(c fiber.Ctx) (id uuid.UUID, username string, ok bool) {
	id, ok = c.Locals(CtxAdminIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	username, _ = c.Locals(CtxUsernameKey).(string)
	return id, username, true
}

// BearerToken extracts the token of an "Authorization: Bearer <token>"
// header.
func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
