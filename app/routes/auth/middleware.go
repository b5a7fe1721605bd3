package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// AuthMiddleware validates the Bearer token and stores the caller's
// identity on the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(401).JSON(fiber.Map{"error": "Access token required"})
	}

	claims, err := ValidateJWT(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_role", claims.Role)
	return c.Next()
}

// RequireAdmin rejects callers without the ADMIN role. Must run after
// AuthMiddleware.
func RequireAdmin(c *fiber.Ctx) error {
	if role, _ := c.Locals("user_role").(string); role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Admin access required"})
	}
	return c.Next()
}
