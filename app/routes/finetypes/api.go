package finetypes

import (
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
	"github.com/karstenbb/kaupanger-botsystem/app/services"
)

var validate = validator.New()

type FineTypeRequest struct {
	Name        string  `json:"name" validate:"required"`
	Amount      int     `json:"amount" validate:"gte=0"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// GetFineTypesAPI lists the catalog with per-type usage counts.
func GetFineTypesAPI(c *fiber.Ctx, db *sql.DB) error {
	fineTypes, err := database.GetAllFineTypes(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fine types"})
	}

	return c.JSON(fiber.Map{
		"fineTypes": fineTypes,
		"count":     len(fineTypes),
	})
}

// GetFineTypeAPI returns one fine type with the fines issued under it.
func GetFineTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	fineType, err := database.GetFineTypeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fine type"})
	}

	fines, err := database.GetFines(db, database.FineFilters{FineTypeID: fineType.ID})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fines"})
	}
	fineType.Fines = fines
	fineType.FineCount = len(fines)

	return c.JSON(fineType)
}

func CreateFineTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req FineTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required and amount must not be negative"})
	}

	if _, err := database.GetFineTypeByName(db, req.Name); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "A fine type with that name already exists"})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	fineType := &models.FineType{
		Name:     req.Name,
		Amount:   req.Amount,
		Category: "Generelt",
	}
	if req.Description != nil {
		fineType.Description = *req.Description
	}
	if req.Category != nil && *req.Category != "" {
		fineType.Category = *req.Category
	}

	if err := database.CreateFineType(db, fineType); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fine type"})
	}

	return c.Status(201).JSON(fineType)
}

func UpdateFineTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	fineType, err := database.GetFineTypeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fine type"})
	}

	var req FineTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required and amount must not be negative"})
	}

	fineType.Name = req.Name
	fineType.Amount = req.Amount
	if req.Description != nil {
		fineType.Description = *req.Description
	}
	if req.Category != nil && *req.Category != "" {
		fineType.Category = *req.Category
	}

	if err := database.UpdateFineType(db, fineType); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fine type"})
	}

	return c.JSON(fineType)
}

// DeleteFineTypeAPI removes a fine type unless fines still reference it.
func DeleteFineTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	count, err := services.DeleteFineType(database.NewStore(db), c.Params("id"))
	if err != nil {
		if err == services.ErrFineTypeInUse {
			return c.Status(400).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot delete fine type: %d fines are registered under it", count),
			})
		}
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fine type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fine type"})
	}

	return c.JSON(fiber.Map{"message": "Fine type deleted"})
}
