package database

import (
	"database/sql"
	"time"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// Store wraps a *sql.DB behind methods so the service layer (reconciler,
// automatic fine jobs, admin bootstrap) can run against a fake in tests.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetSiteContent(key string) (*models.SiteContent, error) {
	return GetSiteContent(s.db, key)
}

func (s *Store) UpsertSiteContent(key, content string) error {
	_, err := UpsertSiteContent(s.db, key, content)
	return err
}

func (s *Store) GetAllFineTypes() ([]*models.FineType, error) {
	return GetAllFineTypes(s.db)
}

func (s *Store) GetFineTypeByName(name string) (*models.FineType, error) {
	return GetFineTypeByName(s.db, name)
}

func (s *Store) CreateFineType(ft *models.FineType) error {
	return CreateFineType(s.db, ft)
}

func (s *Store) UpdateFineType(ft *models.FineType) error {
	return UpdateFineType(s.db, ft)
}

func (s *Store) RenameFineType(fineTypeID, newName string) error {
	return RenameFineType(s.db, fineTypeID, newName)
}

func (s *Store) CountFinesForType(fineTypeID string) (int, error) {
	return CountFinesForType(s.db, fineTypeID)
}

func (s *Store) DeleteFineType(fineTypeID string) error {
	return DeleteFineType(s.db, fineTypeID)
}

func (s *Store) GetAllPlayers() ([]*models.Player, error) {
	return GetAllPlayers(s.db)
}

func (s *Store) GetPlayerByID(playerID string) (*models.Player, error) {
	return GetPlayerByID(s.db, playerID)
}

func (s *Store) GetPlayerByName(name string) (*models.Player, error) {
	return GetPlayerByName(s.db, name)
}

func (s *Store) CreatePlayer(p *models.Player) error {
	return CreatePlayer(s.db, p)
}

func (s *Store) CreateFine(f *models.Fine) error {
	return CreateFine(s.db, f)
}

func (s *Store) PlayerIDsFinedBetween(from, to time.Time) ([]string, error) {
	return PlayerIDsFinedBetween(s.db, from, to)
}

func (s *Store) PlayerIDsWithUnpaidFines() ([]string, error) {
	return PlayerIDsWithUnpaidFines(s.db)
}

func (s *Store) PlayerIDsFinedWithTypeBetween(fineTypeID string, from, to time.Time) ([]string, error) {
	return PlayerIDsFinedWithTypeBetween(s.db, fineTypeID, from, to)
}

func (s *Store) GetUserByPlayerID(playerID string) (*models.User, error) {
	return GetUserByPlayerID(s.db, playerID)
}

func (s *Store) CreateUser(u *models.User) error {
	return CreateUser(s.db, u)
}

func (s *Store) UpdateUserRole(userID, role string) error {
	return UpdateUserRole(s.db, userID, role)
}
