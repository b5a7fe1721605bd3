package leaderboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
)

// GetLeaderboardAPI ranks players by total fine amount, highest first.
// Players without fines are left off the board.
func GetLeaderboardAPI(c *fiber.Ctx, db *sql.DB) error {
	limit := c.QueryInt("limit")

	entries, err := database.GetLeaderboard(db, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	return c.JSON(fiber.Map{
		"leaderboard": entries,
		"count":       len(entries),
	})
}
