package public

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
)

func SetupPublicRoutes(app *fiber.App) {
	api := app.Group("/api/public")

	api.Get("/fines", func(c *fiber.Ctx) error {
		return GetPublicFinesAPI(c, config.GetDB())
	})
	api.Get("/summary", func(c *fiber.Ctx) error {
		return GetPublicSummaryAPI(c, config.GetDB())
	})
	api.Get("/fine-types", func(c *fiber.Ctx) error {
		return GetPublicFineTypesAPI(c, config.GetDB())
	})
	api.Get("/rules", func(c *fiber.Ctx) error {
		return GetRulesAPI(c, config.GetDB())
	})
}
