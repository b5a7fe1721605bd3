package finetypes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
)

func SetupFineTypeRoutes(app *fiber.App) {
	api := app.Group("/api/fine-types")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetFineTypesAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetFineTypeAPI(c, config.GetDB())
	})

	api.Post("/", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return CreateFineTypeAPI(c, config.GetDB())
	})
	api.Put("/:id", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return UpdateFineTypeAPI(c, config.GetDB())
	})
	api.Delete("/:id", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return DeleteFineTypeAPI(c, config.GetDB())
	})
}
