package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

func TestDeleteFineTypeUnused(t *testing.T) {
	store := newMemStore()
	ft := store.addFineType("§ 1-4 Tunnel i firkant", 20, "Trening")

	count, err := DeleteFineType(store, ft.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, store.fineTypes)
}

func TestDeleteFineTypeInUse(t *testing.T) {
	store := newMemStore()
	ft := store.addFineType("§ 2-1 Fråvær kamp", 500, "Kamp")
	p := store.addPlayer("Ola", false)
	store.addFine(p.ID, ft.ID, 500, models.FineStatusUnpaid, time.Now())
	store.addFine(p.ID, ft.ID, 500, models.FineStatusPaid, time.Now())

	count, err := DeleteFineType(store, ft.ID)
	assert.ErrorIs(t, err, ErrFineTypeInUse)
	assert.Equal(t, 2, count)
	// The row is untouched.
	assert.Len(t, store.fineTypes, 1)
}
