package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// memStore is an in-memory Store for service tests. Missing rows are
// reported as sql.ErrNoRows, matching the postgres-backed store.
type memStore struct {
	siteContent map[string]string
	fineTypes   []*models.FineType
	players     []*models.Player
	fines       []*models.Fine
	users       []*models.User

	writes int
}

func newMemStore() *memStore {
	return &memStore{siteContent: make(map[string]string)}
}

func (s *memStore) addPlayer(name string, system bool) *models.Player {
	p := &models.Player{ID: uuid.NewString(), Name: name, IsSystem: system}
	s.players = append(s.players, p)
	return p
}

func (s *memStore) addFineType(name string, amount int, category string) *models.FineType {
	ft := &models.FineType{ID: uuid.NewString(), Name: name, Amount: amount, Category: category}
	s.fineTypes = append(s.fineTypes, ft)
	return ft
}

func (s *memStore) addFine(playerID, fineTypeID string, amount int, status string, date time.Time) *models.Fine {
	f := &models.Fine{
		ID: uuid.NewString(), PlayerID: playerID, FineTypeID: fineTypeID,
		Amount: amount, Status: status, Date: date,
	}
	s.fines = append(s.fines, f)
	s.refreshFineCounts()
	return f
}

func (s *memStore) refreshFineCounts() {
	for _, ft := range s.fineTypes {
		ft.FineCount = 0
		for _, f := range s.fines {
			if f.FineTypeID == ft.ID {
				ft.FineCount++
			}
		}
	}
}

func (s *memStore) GetSiteContent(key string) (*models.SiteContent, error) {
	content, ok := s.siteContent[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &models.SiteContent{Key: key, Content: content}, nil
}

func (s *memStore) UpsertSiteContent(key, content string) error {
	s.siteContent[key] = content
	s.writes++
	return nil
}

func (s *memStore) GetAllFineTypes() ([]*models.FineType, error) {
	s.refreshFineCounts()
	return append([]*models.FineType(nil), s.fineTypes...), nil
}

func (s *memStore) GetFineTypeByName(name string) (*models.FineType, error) {
	for _, ft := range s.fineTypes {
		if ft.Name == name {
			return ft, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memStore) CreateFineType(ft *models.FineType) error {
	ft.ID = uuid.NewString()
	s.fineTypes = append(s.fineTypes, ft)
	s.writes++
	return nil
}

func (s *memStore) UpdateFineType(ft *models.FineType) error {
	for i, existing := range s.fineTypes {
		if existing.ID == ft.ID {
			s.fineTypes[i] = ft
			s.writes++
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *memStore) RenameFineType(fineTypeID, newName string) error {
	for _, ft := range s.fineTypes {
		if ft.ID == fineTypeID {
			ft.Name = newName
			s.writes++
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *memStore) CountFinesForType(fineTypeID string) (int, error) {
	count := 0
	for _, f := range s.fines {
		if f.FineTypeID == fineTypeID {
			count++
		}
	}
	return count, nil
}

func (s *memStore) DeleteFineType(fineTypeID string) error {
	for i, ft := range s.fineTypes {
		if ft.ID == fineTypeID {
			s.fineTypes = append(s.fineTypes[:i], s.fineTypes[i+1:]...)
			s.writes++
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *memStore) GetAllPlayers() ([]*models.Player, error) {
	return append([]*models.Player(nil), s.players...), nil
}

func (s *memStore) GetPlayerByID(playerID string) (*models.Player, error) {
	for _, p := range s.players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memStore) GetPlayerByName(name string) (*models.Player, error) {
	for _, p := range s.players {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memStore) CreatePlayer(p *models.Player) error {
	p.ID = uuid.NewString()
	s.players = append(s.players, p)
	s.writes++
	return nil
}

func (s *memStore) CreateFine(f *models.Fine) error {
	f.ID = uuid.NewString()
	if f.Status == "" {
		f.Status = models.FineStatusUnpaid
	}
	s.fines = append(s.fines, f)
	s.writes++
	return nil
}

func (s *memStore) PlayerIDsFinedBetween(from, to time.Time) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, f := range s.fines {
		if !f.Date.Before(from) && f.Date.Before(to) && !seen[f.PlayerID] {
			seen[f.PlayerID] = true
			ids = append(ids, f.PlayerID)
		}
	}
	return ids, nil
}

func (s *memStore) PlayerIDsWithUnpaidFines() ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, f := range s.fines {
		if f.Status == models.FineStatusUnpaid && !seen[f.PlayerID] {
			seen[f.PlayerID] = true
			ids = append(ids, f.PlayerID)
		}
	}
	return ids, nil
}

func (s *memStore) PlayerIDsFinedWithTypeBetween(fineTypeID string, from, to time.Time) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, f := range s.fines {
		if f.FineTypeID == fineTypeID && !f.Date.Before(from) && f.Date.Before(to) && !seen[f.PlayerID] {
			seen[f.PlayerID] = true
			ids = append(ids, f.PlayerID)
		}
	}
	return ids, nil
}

func (s *memStore) GetUserByPlayerID(playerID string) (*models.User, error) {
	for _, u := range s.users {
		if u.PlayerID != nil && *u.PlayerID == playerID {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *memStore) CreateUser(u *models.User) error {
	u.ID = uuid.NewString()
	s.users = append(s.users, u)
	s.writes++
	return nil
}

func (s *memStore) UpdateUserRole(userID, role string) error {
	for _, u := range s.users {
		if u.ID == userID {
			u.Role = role
			s.writes++
			return nil
		}
	}
	return sql.ErrNoRows
}
