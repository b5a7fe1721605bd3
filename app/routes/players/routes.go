package players

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
)

func SetupPlayerRoutes(app *fiber.App) {
	api := app.Group("/api/players")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPlayersAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetPlayerAPI(c, config.GetDB())
	})

	api.Post("/", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return CreatePlayerAPI(c, config.GetDB())
	})
	api.Put("/:id", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return UpdatePlayerAPI(c, config.GetDB())
	})
	api.Delete("/:id", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return DeletePlayerAPI(c, config.GetDB())
	})
}
