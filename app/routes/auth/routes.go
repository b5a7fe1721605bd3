package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	api.Post("/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, config.GetDB())
	})
	api.Post("/register", func(c *fiber.Ctx) error {
		return RegisterAPI(c, config.GetDB())
	})

	api.Get("/profile", AuthMiddleware, func(c *fiber.Ctx) error {
		return ProfileAPI(c, config.GetDB())
	})
}
