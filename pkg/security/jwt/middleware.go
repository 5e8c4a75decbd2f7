package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubjectLocal is the fiber Locals key holding the token subject.
const SubjectLocal = "subject"

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// When enabled is false every request passes through.
func NewAuthMiddleware(secret, expectedIssuer string, enabled bool) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := Parse(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals(SubjectLocal, claims.Subject)
		return c.Next()
	}
}
