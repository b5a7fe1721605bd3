package rules

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// UpdateRulesAPI replaces the rule book text shown on the public rules page.
func UpdateRulesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Content is required"})
	}

	content, err := database.UpsertSiteContent(db, models.ContentKeyRules, req.Content)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save rules"})
	}

	return c.JSON(fiber.Map{
		"content":   content.Content,
		"updatedAt": content.UpdatedAt,
	})
}
