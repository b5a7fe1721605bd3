package fines

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
)

func SetupFineRoutes(app *fiber.App) {
	api := app.Group("/api/fines")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetFinesAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetFineAPI(c, config.GetDB())
	})

	api.Post("/", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return CreateFineAPI(c, config.GetDB())
	})
	api.Post("/bulk", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return CreateBulkFinesAPI(c, config.GetDB())
	})
	api.Put("/:id", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return UpdateFineAPI(c, config.GetDB())
	})
	api.Patch("/:id/status", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return UpdateFineStatusAPI(c, config.GetDB())
	})
	api.Delete("/:id", auth.RequireAdmin, func(c *fiber.Ctx) error {
		return DeleteFineAPI(c, config.GetDB())
	})
}
