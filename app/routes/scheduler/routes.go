package scheduler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
)

func SetupSchedulerRoutes(app *fiber.App) {
	api := app.Group("/api/scheduler")
	api.Use(auth.AuthMiddleware, auth.RequireAdmin)

	api.Post("/run-botfri", func(c *fiber.Ctx) error {
		return RunBotfriAPI(c, config.GetDB())
	})
	api.Post("/run-forsein", func(c *fiber.Ctx) error {
		return RunLatePaymentAPI(c, config.GetDB())
	})
}
