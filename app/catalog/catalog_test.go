package catalog

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFineTypeNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(FineTypes))
	for _, def := range FineTypes {
		assert.False(t, seen[def.Name], "duplicate fine type name: %s", def.Name)
		seen[def.Name] = true
	}
}

func TestFineTypeEntriesAreComplete(t *testing.T) {
	for _, def := range FineTypes {
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Description, "missing description: %s", def.Name)
		assert.NotEmpty(t, def.Category, "missing category: %s", def.Name)
		assert.GreaterOrEqual(t, def.Amount, 0, "negative amount: %s", def.Name)
	}
}

func TestVersionIsADate(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), Version)
}

func TestRenameTargetsExistInCatalog(t *testing.T) {
	byName := make(map[string]bool, len(FineTypes))
	for _, def := range FineTypes {
		byName[def.Name] = true
	}

	for oldName, newName := range Renames {
		assert.NotEmpty(t, oldName)
		assert.True(t, byName[newName], "rename target not in catalog: %s", newName)
		// An old name still present in the catalog would rename a row the
		// catalog immediately recreates.
		assert.False(t, byName[oldName], "rename source still in catalog: %s", oldName)
	}
}

func TestDefaultRulesNotEmpty(t *testing.T) {
	assert.NotEmpty(t, DefaultRules)
}
