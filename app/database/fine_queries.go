package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// FineFilters narrows fine listings.
type FineFilters struct {
	PlayerID   string
	FineTypeID string
	Status     string
	Limit      int
}

const fineSelect = `
	SELECT f.id, f.player_id, f.fine_type_id, f.amount, f.reason, f.date, f.status, f.paid_at,
		f.created_at, f.updated_at,
		p.name, p.position, p.number, p.avatar_url,
		ft.name, ft.amount, ft.description, ft.category
	FROM fines f
	JOIN players p ON p.id = f.player_id
	JOIN fine_types ft ON ft.id = f.fine_type_id
`

func scanFine(row interface{ Scan(...interface{}) error }) (*models.Fine, error) {
	f := &models.Fine{Player: &models.Player{}, FineType: &models.FineType{}}
	err := row.Scan(
		&f.ID, &f.PlayerID, &f.FineTypeID, &f.Amount, &f.Reason, &f.Date, &f.Status, &f.PaidAt,
		&f.CreatedAt, &f.UpdatedAt,
		&f.Player.Name, &f.Player.Position, &f.Player.Number, &f.Player.AvatarURL,
		&f.FineType.Name, &f.FineType.Amount, &f.FineType.Description, &f.FineType.Category,
	)
	if err != nil {
		return nil, err
	}
	f.Player.ID = f.PlayerID
	f.FineType.ID = f.FineTypeID
	return f, nil
}

func collectFines(rows *sql.Rows) ([]*models.Fine, error) {
	defer rows.Close()
	var fines []*models.Fine
	for rows.Next() {
		f, err := scanFine(rows)
		if err != nil {
			return nil, err
		}
		fines = append(fines, f)
	}
	return fines, rows.Err()
}

// GetFines lists fines newest first, optionally filtered.
func GetFines(db *sql.DB, filters FineFilters) ([]*models.Fine, error) {
	query := fineSelect + ` WHERE 1=1`
	var args []interface{}

	if filters.PlayerID != "" {
		args = append(args, filters.PlayerID)
		query += fmt.Sprintf(` AND f.player_id = $%d`, len(args))
	}
	if filters.FineTypeID != "" {
		args = append(args, filters.FineTypeID)
		query += fmt.Sprintf(` AND f.fine_type_id = $%d`, len(args))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		query += fmt.Sprintf(` AND f.status = $%d`, len(args))
	}
	query += ` ORDER BY f.date DESC`
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectFines(rows)
}

func GetFineByID(db *sql.DB, fineID string) (*models.Fine, error) {
	return scanFine(db.QueryRow(fineSelect+` WHERE f.id = $1`, fineID))
}

// GetFinesForPlayer lists a player's fines newest first.
func GetFinesForPlayer(db *sql.DB, playerID string) ([]*models.Fine, error) {
	rows, err := db.Query(fineSelect+` WHERE f.player_id = $1 ORDER BY f.date DESC`, playerID)
	if err != nil {
		return nil, err
	}
	return collectFines(rows)
}

// CreateFine inserts the fine, assigning a fresh id. A zero date means "now".
func CreateFine(db *sql.DB, f *models.Fine) error {
	f.ID = uuid.NewString()
	if f.Date.IsZero() {
		f.Date = time.Now()
	}
	if f.Status == "" {
		f.Status = models.FineStatusUnpaid
	}
	query := `INSERT INTO fines (id, player_id, fine_type_id, amount, reason, date, status, paid_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING created_at, updated_at`
	return db.QueryRow(query,
		f.ID, f.PlayerID, f.FineTypeID, f.Amount, f.Reason, f.Date, f.Status, f.PaidAt,
	).Scan(&f.CreatedAt, &f.UpdatedAt)
}

func UpdateFine(db *sql.DB, f *models.Fine) error {
	query := `UPDATE fines
			  SET amount = $1, reason = $2, status = $3, date = $4, paid_at = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`
	return db.QueryRow(query,
		f.Amount, f.Reason, f.Status, f.Date, f.PaidAt, f.ID,
	).Scan(&f.UpdatedAt)
}

func DeleteFine(db *sql.DB, fineID string) error {
	result, err := db.Exec(`DELETE FROM fines WHERE id = $1`, fineID)
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

// PlayerIDsFinedBetween returns the distinct players with at least one
// fine dated within [from, to).
func PlayerIDsFinedBetween(db *sql.DB, from, to time.Time) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT player_id FROM fines WHERE date >= $1 AND date < $2`, from, to)
	if err != nil {
		return nil, err
	}
	return collectIDs(rows)
}

// PlayerIDsWithUnpaidFines returns the distinct players holding at least
// one unpaid fine.
func PlayerIDsWithUnpaidFines(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT player_id FROM fines WHERE status = 'UNPAID'`)
	if err != nil {
		return nil, err
	}
	return collectIDs(rows)
}

// PlayerIDsFinedWithTypeBetween returns the distinct players already
// issued a fine of the given type within [from, to).
func PlayerIDsFinedWithTypeBetween(db *sql.DB, fineTypeID string, from, to time.Time) ([]string, error) {
	rows, err := db.Query(
		`SELECT DISTINCT player_id FROM fines WHERE fine_type_id = $1 AND date >= $2 AND date < $3`,
		fineTypeID, from, to,
	)
	if err != nil {
		return nil, err
	}
	return collectIDs(rows)
}

func collectIDs(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
