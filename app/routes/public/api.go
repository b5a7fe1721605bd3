package public

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/catalog"
	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// GetPublicFinesAPI lists all fines without requiring a login. The team
// shares one public fine board.
func GetPublicFinesAPI(c *fiber.Ctx, db *sql.DB) error {
	fines, err := database.GetFines(db, database.FineFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fines"})
	}

	return c.JSON(fiber.Map{
		"fines": fines,
		"count": len(fines),
	})
}

// GetPublicSummaryAPI returns overall totals plus the top five of the
// leaderboard for the public landing page.
func GetPublicSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch summary"})
	}

	topPlayers, err := database.GetLeaderboard(db, 5)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	return c.JSON(fiber.Map{
		"stats":      stats,
		"topPlayers": topPlayers,
	})
}

func GetPublicFineTypesAPI(c *fiber.Ctx, db *sql.DB) error {
	fineTypes, err := database.GetAllFineTypes(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fine types"})
	}

	return c.JSON(fiber.Map{
		"fineTypes": fineTypes,
		"count":     len(fineTypes),
	})
}

// GetRulesAPI serves the editable rule book. Before an admin has saved
// anything the built-in default text is returned.
func GetRulesAPI(c *fiber.Ctx, db *sql.DB) error {
	content, err := database.GetSiteContent(db, models.ContentKeyRules)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(fiber.Map{"content": catalog.DefaultRules})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch rules"})
	}

	return c.JSON(fiber.Map{
		"content":   content.Content,
		"updatedAt": content.UpdatedAt,
	})
}
