package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/account-service/pkg/util"
)

const tokenKey = "session_token"

// RequireBearer extracts the bearer token from the Authorization header
// and stores it in the request locals. Token validation itself happens
// in the service layer so that expiry and subject lookup share one path.
func RequireBearer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorized("missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperrors.NewUnauthorized("invalid authorization header")
		}

		c.Locals(tokenKey, parts[1])
		return c.Next()
	}
}

// TokenFromContext retrieves the bearer token stored by RequireBearer.
func TokenFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(tokenKey)
	if val == nil {
		return "", false
	}
	token, ok := val.(string)
	return token, ok && token != ""
}
