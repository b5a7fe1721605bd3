package services

import (
	"time"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// Store is the storage surface the service layer needs. *database.Store
// implements it against postgres; tests use an in-memory fake.
// Lookups report missing rows as sql.ErrNoRows.
type Store interface {
	GetSiteContent(key string) (*models.SiteContent, error)
	UpsertSiteContent(key, content string) error

	GetAllFineTypes() ([]*models.FineType, error)
	GetFineTypeByName(name string) (*models.FineType, error)
	CreateFineType(ft *models.FineType) error
	UpdateFineType(ft *models.FineType) error
	RenameFineType(fineTypeID, newName string) error
	CountFinesForType(fineTypeID string) (int, error)
	DeleteFineType(fineTypeID string) error

	GetAllPlayers() ([]*models.Player, error)
	GetPlayerByID(playerID string) (*models.Player, error)
	GetPlayerByName(name string) (*models.Player, error)
	CreatePlayer(p *models.Player) error

	CreateFine(f *models.Fine) error
	PlayerIDsFinedBetween(from, to time.Time) ([]string, error)
	PlayerIDsWithUnpaidFines() ([]string, error)
	PlayerIDsFinedWithTypeBetween(fineTypeID string, from, to time.Time) ([]string, error)

	GetUserByPlayerID(playerID string) (*models.User, error)
	CreateUser(u *models.User) error
	UpdateUserRole(userID, role string) error
}
