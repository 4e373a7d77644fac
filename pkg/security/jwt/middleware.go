package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NewAuthMiddleware returns a Fiber middleware that validates the session
// JWT, taken from the "jwt" cookie or, failing that, the Authorization
// header. On success it sets the user id (subject) into
// c.Locals("userId").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(SessionCookieName)
		if tokenStr == "" {
			tokenStr = tokenFromHeader(c.Get("Authorization"))
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing session token"})
		}
		subject, err := ParseSubject(tokenStr, secret, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals("userId", subject)
		return c.Next()
	}
}

// tokenFromHeader accepts both "Bearer <token>" and a bare "<token>".
func tokenFromHeader(header string) string {
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}
