package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetDashboardAPI(c, config.GetDB())
	})
}
