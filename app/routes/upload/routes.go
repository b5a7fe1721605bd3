package upload

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/routes/auth"
)

func SetupUploadRoutes(app *fiber.App) {
	api := app.Group("/api/upload")
	api.Use(auth.AuthMiddleware)

	api.Post("/profile-image", UploadProfileImageAPI)
}
