package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// GetAllFineTypes lists every fine type with its usage count, ordered by name.
func GetAllFineTypes(db *sql.DB) ([]*models.FineType, error) {
	query := `
		SELECT ft.id, ft.name, ft.amount, ft.description, ft.category,
			ft.created_at, ft.updated_at, COUNT(f.id) AS fine_count
		FROM fine_types ft
		LEFT JOIN fines f ON f.fine_type_id = ft.id
		GROUP BY ft.id
		ORDER BY ft.name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fineTypes []*models.FineType
	for rows.Next() {
		ft := &models.FineType{}
		err := rows.Scan(
			&ft.ID, &ft.Name, &ft.Amount, &ft.Description, &ft.Category,
			&ft.CreatedAt, &ft.UpdatedAt, &ft.FineCount,
		)
		if err != nil {
			return nil, err
		}
		fineTypes = append(fineTypes, ft)
	}
	return fineTypes, rows.Err()
}

func GetFineTypeByID(db *sql.DB, fineTypeID string) (*models.FineType, error) {
	ft := &models.FineType{}
	query := `SELECT id, name, amount, description, category, created_at, updated_at
			  FROM fine_types WHERE id = $1`
	err := db.QueryRow(query, fineTypeID).Scan(
		&ft.ID, &ft.Name, &ft.Amount, &ft.Description, &ft.Category,
		&ft.CreatedAt, &ft.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ft, nil
}

// GetFineTypeByName looks up a fine type by exact (case-sensitive) name.
func GetFineTypeByName(db *sql.DB, name string) (*models.FineType, error) {
	ft := &models.FineType{}
	query := `SELECT id, name, amount, description, category, created_at, updated_at
			  FROM fine_types WHERE name = $1`
	err := db.QueryRow(query, name).Scan(
		&ft.ID, &ft.Name, &ft.Amount, &ft.Description, &ft.Category,
		&ft.CreatedAt, &ft.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ft, nil
}

// CreateFineType inserts the fine type, assigning a fresh id.
func CreateFineType(db *sql.DB, ft *models.FineType) error {
	ft.ID = uuid.NewString()
	query := `INSERT INTO fine_types (id, name, amount, description, category)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING created_at, updated_at`
	return db.QueryRow(query,
		ft.ID, ft.Name, ft.Amount, ft.Description, ft.Category,
	).Scan(&ft.CreatedAt, &ft.UpdatedAt)
}

func UpdateFineType(db *sql.DB, ft *models.FineType) error {
	query := `UPDATE fine_types
			  SET name = $1, amount = $2, description = $3, category = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING updated_at`
	return db.QueryRow(query,
		ft.Name, ft.Amount, ft.Description, ft.Category, ft.ID,
	).Scan(&ft.UpdatedAt)
}

func RenameFineType(db *sql.DB, fineTypeID, newName string) error {
	_, err := db.Exec(`UPDATE fine_types SET name = $1, updated_at = NOW() WHERE id = $2`, newName, fineTypeID)
	return err
}

// CountFinesForType returns how many fines reference the fine type.
func CountFinesForType(db *sql.DB, fineTypeID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM fines WHERE fine_type_id = $1`, fineTypeID).Scan(&count)
	return count, err
}

func DeleteFineType(db *sql.DB, fineTypeID string) error {
	result, err := db.Exec(`DELETE FROM fine_types WHERE id = $1`, fineTypeID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
