package database

import (
	"database/sql"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

func GetSiteContent(db *sql.DB, key string) (*models.SiteContent, error) {
	sc := &models.SiteContent{}
	err := db.QueryRow(`SELECT key, content, updated_at FROM site_content WHERE key = $1`, key).
		Scan(&sc.Key, &sc.Content, &sc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// UpsertSiteContent overwrites the value under key, creating the row if
// needed, and returns the stored row.
func UpsertSiteContent(db *sql.DB, key, content string) (*models.SiteContent, error) {
	sc := &models.SiteContent{Key: key, Content: content}
	query := `INSERT INTO site_content (key, content, updated_at)
			  VALUES ($1, $2, NOW())
			  ON CONFLICT (key) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
			  RETURNING updated_at`
	if err := db.QueryRow(query, key, content).Scan(&sc.UpdatedAt); err != nil {
		return nil, err
	}
	return sc, nil
}
