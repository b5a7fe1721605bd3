package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karstenbb/kaupanger-botsystem/app/catalog"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

func TestDiffFineTypesCreatesMissing(t *testing.T) {
	desired := []catalog.FineTypeDef{
		{Name: "A", Amount: 100, Category: "Trening"},
		{Name: "B", Amount: 200, Category: "Kamp"},
	}
	existing := []*models.FineType{
		{ID: "1", Name: "A", Amount: 100, Category: "Trening"},
	}

	diff := diffFineTypes(existing, desired)

	require.Len(t, diff.toCreate, 1)
	assert.Equal(t, "B", diff.toCreate[0].Name)
	assert.Empty(t, diff.toUpdate)
	assert.Empty(t, diff.toDelete)
}

func TestDiffFineTypesUpdatesDrifted(t *testing.T) {
	desired := []catalog.FineTypeDef{
		{Name: "A", Amount: 150, Description: "ny tekst", Category: "Trening"},
	}
	existing := []*models.FineType{
		{ID: "1", Name: "A", Amount: 100, Description: "gammal tekst", Category: "Trening"},
	}

	diff := diffFineTypes(existing, desired)

	require.Len(t, diff.toUpdate, 1)
	assert.Equal(t, 150, diff.toUpdate[0].Amount)
	assert.Equal(t, "ny tekst", diff.toUpdate[0].Description)
	assert.Empty(t, diff.toCreate)
}

func TestDiffFineTypesDeleteGuards(t *testing.T) {
	desired := []catalog.FineTypeDef{}
	existing := []*models.FineType{
		{ID: "1", Name: "Unused", Amount: 50, Category: "Kamp", FineCount: 0},
		{ID: "2", Name: "Used", Amount: 50, Category: "Kamp", FineCount: 3},
		{ID: "3", Name: "Botfri månad", Amount: 70, Category: models.CategoryAutomatic},
	}

	diff := diffFineTypes(existing, desired)

	// Only the unused non-automatic row may go. Rows with fines attached
	// and automatic types survive even when absent from the catalog.
	require.Len(t, diff.toDelete, 1)
	assert.Equal(t, "Unused", diff.toDelete[0].Name)
}

func TestReconcileSkipsWhenVersionMatches(t *testing.T) {
	store := newMemStore()
	store.siteContent[models.ContentKeyFineTypesVersion] = catalog.Version

	require.NoError(t, ReconcileFineTypes(store))

	assert.Zero(t, store.writes)
	assert.Empty(t, store.fineTypes)
}

func TestReconcileIsIdempotent(t *testing.T) {
	store := newMemStore()

	require.NoError(t, ReconcileFineTypes(store))
	firstCount := len(store.fineTypes)
	assert.Equal(t, len(catalog.FineTypes), firstCount)
	assert.Equal(t, catalog.DefaultRules, store.siteContent[models.ContentKeyRules])

	writesAfterFirst := store.writes
	require.NoError(t, ReconcileFineTypes(store))

	// Second run hits the version guard and does nothing.
	assert.Equal(t, writesAfterFirst, store.writes)
	assert.Len(t, store.fineTypes, firstCount)
}

func TestReconcileRenamesBeforeUpsert(t *testing.T) {
	store := newMemStore()
	old := store.addFineType("Old", 100, "Trening")

	desired := []catalog.FineTypeDef{{Name: "New", Amount: 150, Category: "Trening"}}
	renames := map[string]string{"Old": "New"}

	require.NoError(t, reconcileFineTypes(store, desired, renames, "v2", "reglar"))

	// The renamed row was updated in place, not duplicated.
	require.Len(t, store.fineTypes, 1)
	assert.Equal(t, old.ID, store.fineTypes[0].ID)
	assert.Equal(t, "New", store.fineTypes[0].Name)
	assert.Equal(t, 150, store.fineTypes[0].Amount)
}

func TestReconcileMissingRenameSourceIsNoop(t *testing.T) {
	store := newMemStore()

	desired := []catalog.FineTypeDef{{Name: "New", Amount: 150, Category: "Trening"}}
	renames := map[string]string{"Never existed": "New"}

	require.NoError(t, reconcileFineTypes(store, desired, renames, "v2", "reglar"))

	require.Len(t, store.fineTypes, 1)
	assert.Equal(t, "New", store.fineTypes[0].Name)
}

func TestReconcileKeepsUsedStaleTypes(t *testing.T) {
	store := newMemStore()
	stale := store.addFineType("Utgått bot", 100, "Kamp")
	player := store.addPlayer("Ola", false)
	store.addFine(player.ID, stale.ID, 100, models.FineStatusUnpaid, time.Now())

	require.NoError(t, reconcileFineTypes(store, nil, nil, "v2", "reglar"))

	_, err := store.GetFineTypeByName("Utgått bot")
	assert.NoError(t, err)
}

func TestReconcileWritesRulesAndVersion(t *testing.T) {
	store := newMemStore()

	require.NoError(t, reconcileFineTypes(store, nil, nil, "v9", "nye reglar"))

	assert.Equal(t, "nye reglar", store.siteContent[models.ContentKeyRules])
	assert.Equal(t, "v9", store.siteContent[models.ContentKeyFineTypesVersion])
}
