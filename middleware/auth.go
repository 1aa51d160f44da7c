package middleware

import (
	"context"
	"strings"

	"varnix-dashboard/models"

	"github.com/gofiber/fiber/v2"
)

// TokenResolver maps a bearer token to a live session.
type TokenResolver interface {
	Get(ctx context.Context, token string) (*models.Session, error)
}

// AuthRequired resolves the Bearer token and stores the owning user id in
// the request locals. Requests without a live token stop here with 401.
func AuthRequired(tokens TokenResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		sess, err := tokens.Get(c.UserContext(), parts[1])
		if err != nil {
			return err
		}
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("userID", sess.UserID)
		c.Locals("session", sess)
		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}
