package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/karstenbb/kaupanger-botsystem/app/config"
	"github.com/karstenbb/kaupanger-botsystem/app/database"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
	"github.com/karstenbb/kaupanger-botsystem/app/services"
)

// Development seed: fills an empty database with the fine type catalog,
// the admin accounts and a handful of demo players with fines.
func main() {
	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Migrations failed: %v\n", err)
		return
	}

	store := database.NewStore(db)
	if err := services.ReconcileFineTypes(store); err != nil {
		fmt.Printf("Catalog sync failed: %v\n", err)
		return
	}
	if err := services.EnsureAdmins(store, services.DefaultAdmins); err != nil {
		fmt.Printf("Admin bootstrap failed: %v\n", err)
		return
	}

	demoPlayers := []models.Player{
		{Name: "Ola Nordmann", Position: ptr("Forsvar"), Number: intPtr(4)},
		{Name: "Per Hansen", Position: ptr("Midtbane"), Number: intPtr(8)},
		{Name: "Lars Viken", Position: ptr("Angriper"), Number: intPtr(9)},
		{Name: "Jon Fjell", Position: ptr("Keeper"), Number: intPtr(1)},
	}

	created := 0
	for i := range demoPlayers {
		p := &demoPlayers[i]
		if _, err := database.GetPlayerByName(db, p.Name); err == nil {
			continue
		} else if err != sql.ErrNoRows {
			fmt.Printf("Player lookup failed: %v\n", err)
			return
		}
		if err := database.CreatePlayer(db, p); err != nil {
			fmt.Printf("Failed to create player %s: %v\n", p.Name, err)
			return
		}
		created++

		fineType, err := database.GetFineTypeByName(db, "§ 1-2 Sein til treningsstart")
		if err != nil {
			continue
		}
		reason := "Demo-bot"
		fine := &models.Fine{
			PlayerID:   p.ID,
			FineTypeID: fineType.ID,
			Amount:     fineType.Amount,
			Reason:     &reason,
			Date:       time.Now().AddDate(0, 0, -i),
		}
		if err := database.CreateFine(db, fine); err != nil {
			fmt.Printf("Failed to create fine for %s: %v\n", p.Name, err)
			return
		}
	}

	fmt.Printf("Seed complete: %d demo player(s) created\n", created)
	fmt.Println("Admin logins: karsten / admin123, nalawi / admin123")
}

func ptr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
