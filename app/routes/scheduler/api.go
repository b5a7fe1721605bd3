package scheduler

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/services"
)

// RunBotfriAPI triggers the botfri check on demand. Running it twice on
// the same day issues duplicate fines; the button is admin-only for a
// reason.
func RunBotfriAPI(c *fiber.Ctx, db *sql.DB) error {
	count, err := services.RunBotfriCheck(database.NewStore(db), time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Botfri check failed"})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Botfri check completed, %d fine(s) issued", count),
		"count":   count,
	})
}

// RunLatePaymentAPI triggers the late payment check on demand. Safe to
// repeat within a month thanks to the per-month dedupe.
func RunLatePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	count, err := services.RunLatePaymentCheck(database.NewStore(db), time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Late payment check failed"})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Late payment check completed, %d fine(s) issued", count),
		"count":   count,
	})
}
