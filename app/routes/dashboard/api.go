package dashboard

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
)

// GetDashboardAPI aggregates the numbers the admin landing page shows:
// ledger totals, the ten most recent fines and monthly sums for the
// last six months.
func GetDashboardAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	recentFines, err := database.GetFines(db, database.FineFilters{Limit: 10})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch recent fines"})
	}

	since := time.Now().AddDate(0, -5, 0)
	since = time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, since.Location())
	monthlyTotals, err := database.GetMonthlyFineTotals(db, since)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly totals"})
	}

	return c.JSON(fiber.Map{
		"stats":         stats,
		"recentFines":   recentFines,
		"monthlyTotals": monthlyTotals,
	})
}
