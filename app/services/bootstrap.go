package services

import (
	"database/sql"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

// AdminSpec describes one admin account that must exist after startup.
type AdminSpec struct {
	Username string
	Email    string
	Name     string
	Position string
}

// DefaultAdmins are ensured on every start.
var DefaultAdmins = []AdminSpec{
	{Username: "karsten", Email: "karsten@kaupanger.no", Name: "Karsten Bjelde", Position: "Midtbane"},
	{Username: "nalawi", Email: "nalawi@kaupanger.no", Name: "Nalawi Foto Solomon", Position: "Angriper"},
}

const defaultAdminPassword = "admin123"

// EnsureAdmins creates missing admin players/users and upgrades existing
// users to ADMIN. Strictly additive: nothing is removed or downgraded.
func EnsureAdmins(store Store, admins []AdminSpec) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), 12)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		player, err := store.GetPlayerByName(admin.Name)
		if errors.Is(err, sql.ErrNoRows) {
			player = &models.Player{Name: admin.Name, Position: &admin.Position}
			if err := store.CreatePlayer(player); err != nil {
				return err
			}
			log.Printf("Created player: %s", admin.Name)
		} else if err != nil {
			return err
		}

		user, err := store.GetUserByPlayerID(player.ID)
		if errors.Is(err, sql.ErrNoRows) {
			user = &models.User{
				Username: admin.Username,
				Email:    admin.Email,
				Password: string(hashed),
				Role:     models.RoleAdmin,
				PlayerID: &player.ID,
			}
			if err := store.CreateUser(user); err != nil {
				return err
			}
			log.Printf("Created admin user: %s", admin.Username)
			continue
		}
		if err != nil {
			return err
		}

		if user.Role != models.RoleAdmin {
			if err := store.UpdateUserRole(user.ID, models.RoleAdmin); err != nil {
				return err
			}
			log.Printf("Upgraded user to ADMIN: %s", admin.Username)
		}
	}
	return nil
}
