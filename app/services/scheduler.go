package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/karstenbb/kaupanger-botsystem/app/database"
)

const (
	// Both automatic fine jobs fire at this hour.
	jobHour = 8
	// Day of month the late payment check runs (two days into the new month).
	latePaymentDay = 3
)

// StartScheduler starts the background task scheduler. The botfri check
// runs on the last calendar day of each month at 08:00, the late payment
// check on day 3 at 08:00. A failed run is logged and dropped; the next
// scheduled tick is the retry mechanism.
func StartScheduler(db *sql.DB) {
	store := database.NewStore(db)

	go func() {
		log.Println("Scheduler started...")
		log.Printf("  Botfri månad: last day of each month at %02d:00", jobHour)
		log.Printf("  Forsein betaling: day %d of each month at %02d:00", latePaymentDay, jobHour)

		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			if now.Hour() == jobHour && now.Minute() == 0 {
				if IsLastDayOfMonth(now) {
					log.Println("Triggering scheduled task: botfri månad...")
					if _, err := RunBotfriCheck(store, now); err != nil {
						log.Printf("Botfri check failed: %v", err)
					}
				}
				if now.Day() == latePaymentDay {
					log.Println("Triggering scheduled task: forsein betaling...")
					if _, err := RunLatePaymentCheck(store, now); err != nil {
						log.Printf("Late payment check failed: %v", err)
					}
				}
			}

			// Hourly keep-alive so the hosted database doesn't idle out.
			if now.Minute() == 0 {
				if err := db.Ping(); err != nil {
					log.Printf("Database keep-alive ping failed: %v", err)
				}
			}
		}
	}()
}
