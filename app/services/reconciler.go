package services

import (
	"database/sql"
	"errors"
	"log"

	"github.com/karstenbb/kaupanger-botsystem/app/catalog"
	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// fineTypeDiff is the pure outcome of comparing persisted fine types
// against the code-level catalog.
type fineTypeDiff struct {
	toCreate []catalog.FineTypeDef
	toUpdate []*models.FineType
	toDelete []*models.FineType
}

// diffFineTypes matches rows to catalog entries by exact name. Matched
// rows whose amount, description or category drifted get the catalog
// values copied onto them and land in toUpdate. Rows absent from the
// catalog are deleted only when they are not automatic and have zero
// fines attached; used rows are kept so historical fines stay intact.
func diffFineTypes(existing []*models.FineType, desired []catalog.FineTypeDef) fineTypeDiff {
	byName := make(map[string]*models.FineType, len(existing))
	for _, ft := range existing {
		byName[ft.Name] = ft
	}

	var diff fineTypeDiff
	desiredNames := make(map[string]bool, len(desired))
	for _, def := range desired {
		desiredNames[def.Name] = true
		ft, ok := byName[def.Name]
		if !ok {
			diff.toCreate = append(diff.toCreate, def)
			continue
		}
		if ft.Amount != def.Amount || ft.Description != def.Description || ft.Category != def.Category {
			ft.Amount = def.Amount
			ft.Description = def.Description
			ft.Category = def.Category
			diff.toUpdate = append(diff.toUpdate, ft)
		}
	}

	for _, ft := range existing {
		if ft.IsAutomatic() || desiredNames[ft.Name] || ft.FineCount > 0 {
			continue
		}
		diff.toDelete = append(diff.toDelete, ft)
	}
	return diff
}

// ReconcileFineTypes synchronizes the persisted fine types, rules text
// and version marker with the current code-level catalog. Runs once at
// startup; a failure here should abort the process.
func ReconcileFineTypes(store Store) error {
	return reconcileFineTypes(store, catalog.FineTypes, catalog.Renames, catalog.Version, catalog.DefaultRules)
}

func reconcileFineTypes(store Store, desired []catalog.FineTypeDef, renames map[string]string, version, rulesText string) error {
	row, err := store.GetSiteContent(models.ContentKeyFineTypesVersion)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if row != nil && row.Content == version {
		return nil
	}

	log.Printf("Updating fine type catalog to version %s...", version)

	// Renames run before upserts so a catalog entry matching the new
	// name updates the renamed row instead of creating a duplicate.
	for oldName, newName := range renames {
		ft, err := store.GetFineTypeByName(oldName)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return err
		}
		if err := store.RenameFineType(ft.ID, newName); err != nil {
			return err
		}
		log.Printf("  Renamed fine type: %s -> %s", oldName, newName)
	}

	existing, err := store.GetAllFineTypes()
	if err != nil {
		return err
	}

	diff := diffFineTypes(existing, desired)

	for _, def := range diff.toCreate {
		ft := &models.FineType{
			Name:        def.Name,
			Amount:      def.Amount,
			Description: def.Description,
			Category:    def.Category,
		}
		if err := store.CreateFineType(ft); err != nil {
			return err
		}
		log.Printf("  Created fine type: %s (%d kr)", ft.Name, ft.Amount)
	}

	for _, ft := range diff.toUpdate {
		if err := store.UpdateFineType(ft); err != nil {
			return err
		}
		log.Printf("  Updated fine type: %s (%d kr)", ft.Name, ft.Amount)
	}

	for _, ft := range diff.toDelete {
		if err := store.DeleteFineType(ft.ID); err != nil {
			return err
		}
		log.Printf("  Deleted stale fine type: %s", ft.Name)
	}

	if err := store.UpsertSiteContent(models.ContentKeyRules, rulesText); err != nil {
		return err
	}
	if err := store.UpsertSiteContent(models.ContentKeyFineTypesVersion, version); err != nil {
		return err
	}

	log.Printf("Fine type catalog updated: %d entries (v%s)", len(desired), version)
	return nil
}
