package leaderboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
)

func SetupLeaderboardRoutes(app *fiber.App) {
	api := app.Group("/api/leaderboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetLeaderboardAPI(c, config.GetDB())
	})
}
