package services

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// Automatic fine configuration. The fine types are created on first use
// under the automatic category and their amounts follow these values.
const (
	BotfriFineTypeName = "Botfri månad"
	BotfriAmount       = 70
	botfriDescription  = "Automatisk bot for spelarar utan bøter denne månaden"
	botfriReason       = "Ingen bøter denne månaden - automatisk bot"

	LatePaymentFineTypeName = "Forsein betaling"
	LatePaymentAmount       = 100
	latePaymentDescription  = "Automatisk bot for ubetalte bøter etter 2 dagar inn i ny månad"
	latePaymentReason       = "Ubetalte bøter - automatisk bot"
)

// getOrCreateAutoFineType finds the automatic fine type by name, creating
// it if missing. A drifted amount is rewritten so the row always reflects
// the configured value rather than a historical snapshot.
func getOrCreateAutoFineType(store Store, name string, amount int, description string) (*models.FineType, error) {
	ft, err := store.GetFineTypeByName(name)
	if errors.Is(err, sql.ErrNoRows) {
		ft = &models.FineType{
			Name:        name,
			Amount:      amount,
			Description: description,
			Category:    models.CategoryAutomatic,
		}
		if err := store.CreateFineType(ft); err != nil {
			return nil, err
		}
		log.Printf("Created automatic fine type: %s", name)
		return ft, nil
	}
	if err != nil {
		return nil, err
	}
	if ft.Amount != amount {
		ft.Amount = amount
		if err := store.UpdateFineType(ft); err != nil {
			return nil, err
		}
		log.Printf("Updated automatic fine type amount: %s (%d kr)", name, amount)
	}
	return ft, nil
}

// RunBotfriCheck fines every player without a fine dated this month.
// Called on the last day of each month, and on demand from the admin
// endpoint. Returns the number of fines issued.
func RunBotfriCheck(store Store, now time.Time) (int, error) {
	log.Println("Running check: botfri månad...")

	players, err := store.GetAllPlayers()
	if err != nil {
		return 0, err
	}

	finedIDs, err := store.PlayerIDsFinedBetween(monthStart(now), startOfTomorrow(now))
	if err != nil {
		return 0, err
	}
	fined := make(map[string]bool, len(finedIDs))
	for _, id := range finedIDs {
		fined[id] = true
	}

	var fineFree []*models.Player
	for _, p := range players {
		if !fined[p.ID] && !p.IsSystem {
			fineFree = append(fineFree, p)
		}
	}

	if len(fineFree) == 0 {
		log.Println("  Every player had a fine this month, no botfri fines.")
		return 0, nil
	}

	fineType, err := getOrCreateAutoFineType(store, BotfriFineTypeName, BotfriAmount, botfriDescription)
	if err != nil {
		return 0, err
	}

	reason := botfriReason
	for _, p := range fineFree {
		fine := &models.Fine{
			PlayerID:   p.ID,
			FineTypeID: fineType.ID,
			Amount:     fineType.Amount,
			Reason:     &reason,
			Date:       now,
		}
		if err := store.CreateFine(fine); err != nil {
			return 0, err
		}
		log.Printf("  Botfri fine issued to %s (%d kr)", p.Name, fineType.Amount)
	}

	log.Printf("  Botfri fines issued to %d player(s).", len(fineFree))
	return len(fineFree), nil
}

// RunLatePaymentCheck fines every player holding unpaid fines, at most
// once per calendar month per player. Returns the number of fines issued.
func RunLatePaymentCheck(store Store, now time.Time) (int, error) {
	log.Println("Running check: forsein betaling...")

	unpaidIDs, err := store.PlayerIDsWithUnpaidFines()
	if err != nil {
		return 0, err
	}
	if len(unpaidIDs) == 0 {
		log.Println("  No players with unpaid fines, no late payment fines.")
		return 0, nil
	}

	fineType, err := getOrCreateAutoFineType(store, LatePaymentFineTypeName, LatePaymentAmount, latePaymentDescription)
	if err != nil {
		return 0, err
	}

	// Best-effort dedupe: players already fined with this type this
	// month are skipped. Not transactional; a manual trigger racing the
	// scheduled one can still double-issue.
	alreadyIDs, err := store.PlayerIDsFinedWithTypeBetween(fineType.ID, monthStart(now), nextMonthStart(now))
	if err != nil {
		return 0, err
	}
	already := make(map[string]bool, len(alreadyIDs))
	for _, id := range alreadyIDs {
		already[id] = true
	}

	count := 0
	reason := latePaymentReason
	for _, playerID := range unpaidIDs {
		if already[playerID] {
			continue
		}

		player, err := store.GetPlayerByID(playerID)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return count, err
		}
		if player.IsSystem {
			continue
		}

		fine := &models.Fine{
			PlayerID:   playerID,
			FineTypeID: fineType.ID,
			Amount:     fineType.Amount,
			Reason:     &reason,
			Date:       now,
		}
		if err := store.CreateFine(fine); err != nil {
			return count, err
		}
		log.Printf("  Late payment fine issued to %s (%d kr)", player.Name, fineType.Amount)
		count++
	}

	log.Printf("  Late payment fines issued to %d player(s).", count)
	return count, nil
}
