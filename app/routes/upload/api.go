package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
)

// UploadProfileImageAPI stores an uploaded profile image under the
// uploads directory and returns its public URL. The frontend saves the
// URL onto the player afterwards.
func UploadProfileImageAPI(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	filename := fmt.Sprintf("%s-%d%s", base, time.Now().UnixMilli(), ext)

	if err := c.SaveFile(file, filepath.Join(config.AppConfig.UploadDir, filename)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save file"})
	}

	return c.JSON(fiber.Map{"url": "/uploads/" + filename})
}
