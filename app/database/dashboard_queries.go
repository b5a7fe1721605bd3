package database

import (
	"database/sql"
	"time"
)

// DashboardStats aggregates the whole fine ledger.
type DashboardStats struct {
	TotalAmount     int `json:"totalAmount"`
	TotalFinesCount int `json:"totalFinesCount"`
	UnpaidAmount    int `json:"unpaidAmount"`
	UnpaidCount     int `json:"unpaidCount"`
	PaidAmount      int `json:"paidAmount"`
	PaidCount       int `json:"paidCount"`
	TotalPlayers    int `json:"totalPlayers"`
	TotalFineTypes  int `json:"totalFineTypes"`
}

// LeaderboardEntry is one ranked row of the fine leaderboard.
type LeaderboardEntry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Position     *string `json:"position,omitempty"`
	Number       *int    `json:"number,omitempty"`
	AvatarURL    *string `json:"avatarUrl,omitempty"`
	TotalAmount  int     `json:"totalAmount"`
	UnpaidAmount int     `json:"unpaidAmount"`
	FineCount    int     `json:"fineCount"`
}

func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}
	query := `
		SELECT
			COALESCE(SUM(amount), 0),
			COUNT(id),
			COALESCE(SUM(amount) FILTER (WHERE status = 'UNPAID'), 0),
			COUNT(id) FILTER (WHERE status = 'UNPAID'),
			COALESCE(SUM(amount) FILTER (WHERE status = 'PAID'), 0),
			COUNT(id) FILTER (WHERE status = 'PAID')
		FROM fines
	`
	err := db.QueryRow(query).Scan(
		&stats.TotalAmount, &stats.TotalFinesCount,
		&stats.UnpaidAmount, &stats.UnpaidCount,
		&stats.PaidAmount, &stats.PaidCount,
	)
	if err != nil {
		return nil, err
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM players`).Scan(&stats.TotalPlayers); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM fine_types`).Scan(&stats.TotalFineTypes); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetMonthlyFineTotals sums fine amounts per "YYYY-MM" month since the
// given time, for the dashboard chart.
func GetMonthlyFineTotals(db *sql.DB, since time.Time) (map[string]int, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0)
		FROM fines
		WHERE date >= $1
		GROUP BY month
		ORDER BY month
	`
	rows, err := db.Query(query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var month string
		var amount int
		if err := rows.Scan(&month, &amount); err != nil {
			return nil, err
		}
		totals[month] = amount
	}
	return totals, rows.Err()
}

// GetLeaderboard ranks players with at least one fine by total amount.
func GetLeaderboard(db *sql.DB, limit int) ([]*LeaderboardEntry, error) {
	query := `
		SELECT p.id, p.name, p.position, p.number, p.avatar_url,
			COALESCE(SUM(f.amount), 0) AS total_amount,
			COALESCE(SUM(f.amount) FILTER (WHERE f.status = 'UNPAID'), 0) AS unpaid_amount,
			COUNT(f.id) AS fine_count
		FROM players p
		JOIN fines f ON f.player_id = p.id
		GROUP BY p.id
		ORDER BY total_amount DESC, p.name
	`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*LeaderboardEntry
	for rows.Next() {
		e := &LeaderboardEntry{}
		err := rows.Scan(
			&e.ID, &e.Name, &e.Position, &e.Number, &e.AvatarURL,
			&e.TotalAmount, &e.UnpaidAmount, &e.FineCount,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
