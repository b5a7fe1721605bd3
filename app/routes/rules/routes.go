package rules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
)

func SetupRulesRoutes(app *fiber.App) {
	api := app.Group("/api/rules")
	api.Use(auth.AuthMiddleware)

	api.Put("/", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return UpdateRulesAPI(c, config.GetDB())
	})
}
