package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

const playerColumns = `id, name, position, number, birth_date, avatar_url, is_system, created_at, updated_at`

func scanPlayer(row interface{ Scan(...interface{}) error }) (*models.Player, error) {
	p := &models.Player{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Position, &p.Number, &p.BirthDate,
		&p.AvatarURL, &p.IsSystem, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func GetAllPlayers(db *sql.DB) ([]*models.Player, error) {
	rows, err := db.Query(`SELECT ` + playerColumns + ` FROM players ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetAllPlayerStats lists players with their fine aggregates, ordered by name.
func GetAllPlayerStats(db *sql.DB) ([]*models.PlayerStats, error) {
	query := `
		SELECT p.id, p.name, p.position, p.number, p.birth_date, p.avatar_url, p.is_system,
			p.created_at, p.updated_at,
			COALESCE(SUM(f.amount), 0) AS total_fines,
			COALESCE(SUM(f.amount) FILTER (WHERE f.status = 'UNPAID'), 0) AS total_unpaid,
			COUNT(f.id) AS fine_count
		FROM players p
		LEFT JOIN fines f ON f.player_id = p.id
		GROUP BY p.id
		ORDER BY p.name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []*models.PlayerStats
	for rows.Next() {
		ps := &models.PlayerStats{}
		err := rows.Scan(
			&ps.ID, &ps.Name, &ps.Position, &ps.Number, &ps.BirthDate, &ps.AvatarURL,
			&ps.IsSystem, &ps.CreatedAt, &ps.UpdatedAt,
			&ps.TotalFines, &ps.TotalUnpaid, &ps.FineCount,
		)
		if err != nil {
			return nil, err
		}
		ps.TotalPaid = ps.TotalFines - ps.TotalUnpaid
		players = append(players, ps)
	}
	return players, rows.Err()
}

func GetPlayerByID(db *sql.DB, playerID string) (*models.Player, error) {
	return scanPlayer(db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE id = $1`, playerID))
}

func GetPlayerByName(db *sql.DB, name string) (*models.Player, error) {
	return scanPlayer(db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE name = $1`, name))
}

// CreatePlayer inserts the player, assigning a fresh id.
func CreatePlayer(db *sql.DB, p *models.Player) error {
	p.ID = uuid.NewString()
	query := `INSERT INTO players (id, name, position, number, birth_date, avatar_url, is_system)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING created_at, updated_at`
	return db.QueryRow(query,
		p.ID, p.Name, p.Position, p.Number, p.BirthDate, p.AvatarURL, p.IsSystem,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func UpdatePlayer(db *sql.DB, p *models.Player) error {
	query := `UPDATE players
			  SET name = $1, position = $2, number = $3, birth_date = $4, avatar_url = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`
	return db.QueryRow(query,
		p.Name, p.Position, p.Number, p.BirthDate, p.AvatarURL, p.ID,
	).Scan(&p.UpdatedAt)
}

func DeletePlayer(db *sql.DB, playerID string) error {
	result, err := db.Exec(`DELETE FROM players WHERE id = $1`, playerID)
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
