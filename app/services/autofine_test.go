package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

func TestBotfriCheckFinesPlayersWithoutFines(t *testing.T) {
	store := newMemStore()
	now := time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC)

	ft := store.addFineType("§ 1-2 Sein til treningsstart", 100, "Trening")
	var players []*models.Player
	for _, name := range []string{"Ola", "Per", "Lars", "Jon", "Nils"} {
		players = append(players, store.addPlayer(name, false))
	}
	// Three of five already fined this month.
	for _, p := range players[:3] {
		store.addFine(p.ID, ft.ID, 100, models.FineStatusUnpaid, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	}

	count, err := RunBotfriCheck(store, now)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	botfri, err := store.GetFineTypeByName(BotfriFineTypeName)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryAutomatic, botfri.Category)

	issued := 0
	for _, f := range store.fines {
		if f.FineTypeID == botfri.ID {
			assert.Equal(t, BotfriAmount, f.Amount)
			issued++
		}
	}
	assert.Equal(t, 2, issued)
}

func TestBotfriCheckCountsFinesFromEarlierInMonth(t *testing.T) {
	store := newMemStore()
	now := time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC)

	ft := store.addFineType("§ 2-8 Unødvendig gult kort", 100, "Kamp")
	p := store.addPlayer("Ola", false)
	// Fined on the 1st of the month, well before the check runs.
	store.addFine(p.ID, ft.ID, 100, models.FineStatusPaid, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	count, err := RunBotfriCheck(store, now)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBotfriCheckIgnoresLastMonthsFines(t *testing.T) {
	store := newMemStore()
	now := time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC)

	ft := store.addFineType("§ 2-8 Unødvendig gult kort", 100, "Kamp")
	p := store.addPlayer("Ola", false)
	store.addFine(p.ID, ft.ID, 100, models.FineStatusPaid, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))

	count, err := RunBotfriCheck(store, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBotfriCheckSkipsSystemPlayers(t *testing.T) {
	store := newMemStore()
	now := time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC)

	store.addPlayer("Ola", false)
	store.addPlayer("Admin", true)

	count, err := RunBotfriCheck(store, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBotfriCheckNoPlayers(t *testing.T) {
	store := newMemStore()

	count, err := RunBotfriCheck(store, time.Now())
	require.NoError(t, err)
	assert.Zero(t, count)
	// The automatic fine type is not created until it is needed.
	_, err = store.GetFineTypeByName(BotfriFineTypeName)
	assert.Error(t, err)
}

func TestLatePaymentCheckFinesUnpaidPlayers(t *testing.T) {
	store := newMemStore()
	now := time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC)

	ft := store.addFineType("§ 2-1 Fråvær kamp", 500, "Kamp")
	debtor := store.addPlayer("Ola", false)
	settled := store.addPlayer("Per", false)
	store.addFine(debtor.ID, ft.ID, 500, models.FineStatusUnpaid, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	store.addFine(settled.ID, ft.ID, 500, models.FineStatusPaid, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	count, err := RunLatePaymentCheck(store, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	lateFt, err := store.GetFineTypeByName(LatePaymentFineTypeName)
	require.NoError(t, err)
	var lateFines []*models.Fine
	for _, f := range store.fines {
		if f.FineTypeID == lateFt.ID {
			lateFines = append(lateFines, f)
		}
	}
	require.Len(t, lateFines, 1)
	assert.Equal(t, debtor.ID, lateFines[0].PlayerID)
	assert.Equal(t, LatePaymentAmount, lateFines[0].Amount)
}

func TestLatePaymentCheckDedupesWithinMonth(t *testing.T) {
	store := newMemStore()
	now := time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC)

	ft := store.addFineType("§ 2-1 Fråvær kamp", 500, "Kamp")
	debtor := store.addPlayer("Ola", false)
	store.addFine(debtor.ID, ft.ID, 500, models.FineStatusUnpaid, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	count, err := RunLatePaymentCheck(store, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Same month again: already fined, nothing issued.
	count, err = RunLatePaymentCheck(store, now.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)

	// Next month the debt is still open, so a new fine goes out.
	count, err = RunLatePaymentCheck(store, time.Date(2026, 5, 3, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLatePaymentCheckSkipsSystemPlayers(t *testing.T) {
	store := newMemStore()
	now := time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC)

	ft := store.addFineType("§ 2-1 Fråvær kamp", 500, "Kamp")
	system := store.addPlayer("Admin", true)
	store.addFine(system.ID, ft.ID, 500, models.FineStatusUnpaid, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	count, err := RunLatePaymentCheck(store, now)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetOrCreateAutoFineTypeRefreshesAmount(t *testing.T) {
	store := newMemStore()
	stale := store.addFineType(BotfriFineTypeName, 50, models.CategoryAutomatic)

	ft, err := getOrCreateAutoFineType(store, BotfriFineTypeName, BotfriAmount, botfriDescription)
	require.NoError(t, err)
	assert.Equal(t, stale.ID, ft.ID)
	assert.Equal(t, BotfriAmount, ft.Amount)
}
