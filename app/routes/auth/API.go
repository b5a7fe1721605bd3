package auth

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

var validate = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=2"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Name      string `json:"name" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Number    int    `json:"number" validate:"required"`
}

func userPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"playerId": user.PlayerID,
		"player":   user.Player,
	}
}

// LoginAPI authenticates by username or email and returns a JWT.
func LoginAPI(c *fiber.Ctx, db *sql.DB) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	user, err := database.GetUserByUsernameOrEmail(db, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if user.PlayerID != nil {
		if player, err := database.GetPlayerByID(db, *user.PlayerID); err == nil {
			user.Player = player
		}
	}

	token, err := GenerateJWT(user.ID, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{"token": token, "user": userPayload(user)})
}

// RegisterAPI is public self-registration: creates a Player and a linked
// USER account in one go.
func RegisterAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}

	username := strings.ToLower(req.Username)
	email := strings.ToLower(req.Email)
	if email == "" {
		email = username + "@kaupanger.no"
	}

	exists, err := database.UserExists(db, username, email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "Username or email already taken"})
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid birth date, expected YYYY-MM-DD"})
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	player := &models.Player{
		Name:      req.Name,
		BirthDate: &birthDate,
		Position:  &req.Position,
		Number:    &req.Number,
	}
	if err := database.CreatePlayer(db, player); err != nil {
		log.Printf("Register: failed to create player: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Registration failed"})
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
		PlayerID: &player.ID,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Printf("Register: failed to create user: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Registration failed"})
	}
	user.Player = player

	token, err := GenerateJWT(user.ID, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(201).JSON(fiber.Map{"token": token, "user": userPayload(user)})
}

// ProfileAPI returns the caller's account with fine stats for the linked
// player.
func ProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	userID, _ := c.Locals("user_id").(string)

	user, err := database.GetUserByID(db, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	var player interface{}
	if user.PlayerID != nil {
		p, err := database.GetPlayerByID(db, *user.PlayerID)
		if err != nil && err != sql.ErrNoRows {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if p != nil {
			fines, err := database.GetFinesForPlayer(db, p.ID)
			if err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Database error"})
			}

			stats := &models.PlayerStats{Player: *p}
			stats.Fines = fines
			stats.FineCount = len(fines)
			for _, f := range fines {
				stats.TotalFines += f.Amount
				if f.Status == models.FineStatusUnpaid {
					stats.TotalUnpaid += f.Amount
				}
			}
			stats.TotalPaid = stats.TotalFines - stats.TotalUnpaid
			player = stats
		}
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"playerId": user.PlayerID,
		"player":   player,
	})
}
