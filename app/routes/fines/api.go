package fines

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

var validate = validator.New()

type FineRequest struct {
	PlayerID   string  `json:"playerId" validate:"required,uuid"`
	FineTypeID string  `json:"fineTypeId" validate:"required,uuid"`
	Amount     *int    `json:"amount" validate:"omitempty,gte=0"`
	Reason     *string `json:"reason"`
	Date       *string `json:"date"`
}

type BulkFineRequest struct {
	PlayerIDs  []string `json:"playerIds" validate:"required,min=1,dive,uuid"`
	FineTypeID string   `json:"fineTypeId" validate:"required,uuid"`
	Amount     *int     `json:"amount" validate:"omitempty,gte=0"`
	Reason     *string  `json:"reason"`
	Date       *string  `json:"date"`
}

func parseFineDate(s *string) (time.Time, error) {
	if s == nil || *s == "" {
		return time.Time{}, nil
	}
	if d, err := time.Parse(time.RFC3339, *s); err == nil {
		return d, nil
	}
	return time.Parse("2006-01-02", *s)
}

// GetFinesAPI lists fines, optionally filtered by playerId, status and limit.
func GetFinesAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.FineFilters{
		PlayerID: c.Query("playerId"),
		Status:   c.Query("status"),
		Limit:    c.QueryInt("limit"),
	}
	if filters.Status != "" && filters.Status != models.FineStatusPaid && filters.Status != models.FineStatusUnpaid {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status. Must be PAID or UNPAID"})
	}

	fines, err := database.GetFines(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fines"})
	}

	return c.JSON(fiber.Map{
		"fines": fines,
		"count": len(fines),
	})
}

func GetFineAPI(c *fiber.Ctx, db *sql.DB) error {
	fine, err := database.GetFineByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fine"})
	}
	return c.JSON(fine)
}

// CreateFineAPI issues a fine. When no amount is given the fine type's
// current default is frozen onto the fine.
func CreateFineAPI(c *fiber.Ctx, db *sql.DB) error {
	var req FineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "playerId and fineTypeId are required"})
	}

	if _, err := database.GetPlayerByID(db, req.PlayerID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Player not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	fineType, err := database.GetFineTypeByID(db, req.FineTypeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	date, err := parseFineDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format"})
	}

	amount := fineType.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}

	fine := &models.Fine{
		PlayerID:   req.PlayerID,
		FineTypeID: req.FineTypeID,
		Amount:     amount,
		Reason:     req.Reason,
		Date:       date,
	}
	if err := database.CreateFine(db, fine); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fine"})
	}

	created, err := database.GetFineByID(db, fine.ID)
	if err != nil {
		return c.Status(201).JSON(fine)
	}
	return c.Status(201).JSON(created)
}

// CreateBulkFinesAPI issues the same fine to several players at once.
func CreateBulkFinesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req BulkFineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "playerIds and fineTypeId are required"})
	}

	fineType, err := database.GetFineTypeByID(db, req.FineTypeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	date, err := parseFineDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format"})
	}

	amount := fineType.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}

	var created []*models.Fine
	for _, playerID := range req.PlayerIDs {
		if _, err := database.GetPlayerByID(db, playerID); err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"error": "Player not found: " + playerID})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}

		fine := &models.Fine{
			PlayerID:   playerID,
			FineTypeID: req.FineTypeID,
			Amount:     amount,
			Reason:     req.Reason,
			Date:       date,
		}
		if err := database.CreateFine(db, fine); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create fines"})
		}
		created = append(created, fine)
	}

	return c.Status(201).JSON(fiber.Map{
		"fines": created,
		"count": len(created),
	})
}

// UpdateFineAPI edits an issued fine's amount, reason, date or status.
func UpdateFineAPI(c *fiber.Ctx, db *sql.DB) error {
	fine, err := database.GetFineByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fine"})
	}

	type UpdateRequest struct {
		Amount *int    `json:"amount" validate:"omitempty,gte=0"`
		Reason *string `json:"reason"`
		Date   *string `json:"date"`
		Status *string `json:"status" validate:"omitempty,oneof=UNPAID PAID"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid fields"})
	}

	if req.Amount != nil {
		fine.Amount = *req.Amount
	}
	if req.Reason != nil {
		fine.Reason = req.Reason
	}
	if req.Date != nil {
		date, err := parseFineDate(req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format"})
		}
		fine.Date = date
	}
	if req.Status != nil && *req.Status != fine.Status {
		if *req.Status == models.FineStatusPaid {
			fine.MarkAsPaid()
		} else {
			fine.MarkAsUnpaid()
		}
	}

	if err := database.UpdateFine(db, fine); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fine"})
	}

	return c.JSON(fine)
}

// UpdateFineStatusAPI toggles a fine between PAID and UNPAID, stamping or
// clearing paidAt.
func UpdateFineStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	fine, err := database.GetFineByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fine"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	switch req.Status {
	case models.FineStatusPaid:
		fine.MarkAsPaid()
	case models.FineStatusUnpaid:
		fine.MarkAsUnpaid()
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status. Must be PAID or UNPAID"})
	}

	if err := database.UpdateFine(db, fine); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fine"})
	}

	return c.JSON(fine)
}

func DeleteFineAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteFine(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fine"})
	}
	return c.JSON(fiber.Map{"message": "Fine deleted"})
}
