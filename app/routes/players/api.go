package players

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

var validate = validator.New()

type PlayerRequest struct {
	Name      string  `json:"name" validate:"required"`
	Position  *string `json:"position"`
	Number    *int    `json:"number"`
	BirthDate *string `json:"birthDate"`
	AvatarURL *string `json:"avatarUrl"`
}

func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetPlayersAPI lists all players with their fine aggregates.
func GetPlayersAPI(c *fiber.Ctx, db *sql.DB) error {
	players, err := database.GetAllPlayerStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch players"})
	}

	return c.JSON(fiber.Map{
		"players": players,
		"count":   len(players),
	})
}

// GetPlayerAPI returns one player with their full fine history and totals.
func GetPlayerAPI(c *fiber.Ctx, db *sql.DB) error {
	playerID := c.Params("id")

	player, err := database.GetPlayerByID(db, playerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Player not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch player"})
	}

	fines, err := database.GetFinesForPlayer(db, playerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fines"})
	}

	stats := &models.PlayerStats{Player: *player}
	stats.Fines = fines
	stats.FineCount = len(fines)
	for _, f := range fines {
		stats.TotalFines += f.Amount
		if f.Status == models.FineStatusUnpaid {
			stats.TotalUnpaid += f.Amount
		}
	}
	stats.TotalPaid = stats.TotalFines - stats.TotalUnpaid

	return c.JSON(stats)
}

// CreatePlayerAPI adds a new squad member.
func CreatePlayerAPI(c *fiber.Ctx, db *sql.DB) error {
	var req PlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid birth date. Use YYYY-MM-DD"})
	}

	player := &models.Player{
		Name:      req.Name,
		Position:  req.Position,
		Number:    req.Number,
		BirthDate: birthDate,
		AvatarURL: req.AvatarURL,
	}
	if err := database.CreatePlayer(db, player); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create player"})
	}

	return c.Status(201).JSON(player)
}

// UpdatePlayerAPI updates a player's profile fields.
func UpdatePlayerAPI(c *fiber.Ctx, db *sql.DB) error {
	playerID := c.Params("id")

	player, err := database.GetPlayerByID(db, playerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Player not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch player"})
	}

	var req PlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid birth date. Use YYYY-MM-DD"})
	}

	player.Name = req.Name
	player.Position = req.Position
	player.Number = req.Number
	if birthDate != nil {
		player.BirthDate = birthDate
	}
	if req.AvatarURL != nil {
		player.AvatarURL = req.AvatarURL
	}

	if err := database.UpdatePlayer(db, player); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update player"})
	}

	return c.JSON(player)
}

// DeletePlayerAPI removes a player. Their fines go with them.
func DeletePlayerAPI(c *fiber.Ctx, db *sql.DB) error {
	playerID := c.Params("id")

	if err := database.DeletePlayer(db, playerID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Player not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete player"})
	}

	return c.JSON(fiber.Map{"message": "Player deleted"})
}
