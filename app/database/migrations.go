package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema updates.
// Everything here is idempotent; it runs on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}
	if err := addIsSystemColumn(db); err != nil {
		return err
	}
	if err := flagSentinelAdminPlayer(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			position TEXT,
			number INT,
			birth_date DATE,
			avatar_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'USER',
			player_id UUID UNIQUE REFERENCES players(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fine_types (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			amount INT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'Generelt',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fines (
			id UUID PRIMARY KEY,
			player_id UUID NOT NULL REFERENCES players(id) ON DELETE CASCADE,
			fine_type_id UUID NOT NULL REFERENCES fine_types(id),
			amount INT NOT NULL,
			reason TEXT,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status TEXT NOT NULL DEFAULT 'UNPAID',
			paid_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS site_content (
			key TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fines_player_id ON fines(player_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fines_fine_type_id ON fines(fine_type_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fines_date ON fines(date)`,
		`CREATE INDEX IF NOT EXISTS idx_fines_status ON fines(status)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run migration statement: %v", err)
			return err
		}
	}
	return nil
}

func addIsSystemColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'players'
				AND column_name = 'is_system'
			) THEN
				ALTER TABLE players ADD COLUMN is_system BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added is_system column to players';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for is_system column: %v", err)
		return err
	}
	return nil
}

// flagSentinelAdminPlayer converts the old "player literally named Admin"
// convention into the is_system flag the jobs filter on.
func flagSentinelAdminPlayer(db *sql.DB) error {
	_, err := db.Exec(`UPDATE players SET is_system = true WHERE name = 'Admin' AND is_system = false`)
	if err != nil {
		log.Printf("Failed to flag sentinel admin player: %v", err)
		return err
	}
	return nil
}
