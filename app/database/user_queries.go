package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

func GetUserByUsernameOrEmail(db *sql.DB, login string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password, role, player_id, created_at, updated_at
			  FROM users WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)`

	err := db.QueryRow(query, login).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.Role, &user.PlayerID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password, role, player_id, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.Role, &user.PlayerID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByPlayerID(db *sql.DB, playerID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password, role, player_id, created_at, updated_at
			  FROM users WHERE player_id = $1`

	err := db.QueryRow(query, playerID).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.Role, &user.PlayerID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UserExists reports whether a user already holds the username or email
// (both compared case-insensitively).
func UserExists(db *sql.DB, username, email string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users
			  WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($2)`
	if err := db.QueryRow(query, username, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUser inserts the user, assigning a fresh id.
func CreateUser(db *sql.DB, user *models.User) error {
	user.ID = uuid.NewString()
	query := `INSERT INTO users (id, username, email, password, role, player_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING created_at, updated_at`
	return db.QueryRow(query,
		user.ID, user.Username, user.Email, user.Password, user.Role, user.PlayerID,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func UpdateUserRole(db *sql.DB, userID, role string) error {
	_, err := db.Exec(`UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`, role, userID)
	return err
}
