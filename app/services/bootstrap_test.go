package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/karstenbb/kaupanger-botsystem/app/models"
)

func TestEnsureAdminsCreatesPlayersAndUsers(t *testing.T) {
	store := newMemStore()

	require.NoError(t, EnsureAdmins(store, DefaultAdmins))

	require.Len(t, store.players, 2)
	require.Len(t, store.users, 2)

	for i, admin := range DefaultAdmins {
		player, err := store.GetPlayerByName(admin.Name)
		require.NoError(t, err)

		user := store.users[i]
		assert.Equal(t, admin.Username, user.Username)
		assert.Equal(t, admin.Email, user.Email)
		assert.Equal(t, models.RoleAdmin, user.Role)
		require.NotNil(t, user.PlayerID)
		assert.Equal(t, player.ID, *user.PlayerID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("admin123")))
	}
}

func TestEnsureAdminsIsIdempotent(t *testing.T) {
	store := newMemStore()

	require.NoError(t, EnsureAdmins(store, DefaultAdmins))
	require.NoError(t, EnsureAdmins(store, DefaultAdmins))

	assert.Len(t, store.players, 2)
	assert.Len(t, store.users, 2)
}

func TestEnsureAdminsUpgradesExistingUser(t *testing.T) {
	store := newMemStore()
	admin := DefaultAdmins[0]

	player := store.addPlayer(admin.Name, false)
	user := &models.User{Username: admin.Username, Email: admin.Email, Role: models.RoleUser, PlayerID: &player.ID}
	require.NoError(t, store.CreateUser(user))

	require.NoError(t, EnsureAdmins(store, DefaultAdmins[:1]))

	assert.Equal(t, models.RoleAdmin, user.Role)
	// No duplicate player or user was made.
	assert.Len(t, store.players, 1)
	assert.Len(t, store.users, 1)
}

func TestEnsureAdminsKeepsExistingPassword(t *testing.T) {
	store := newMemStore()
	admin := DefaultAdmins[0]

	player := store.addPlayer(admin.Name, false)
	user := &models.User{Username: admin.Username, Email: admin.Email, Password: "custom-hash", Role: models.RoleAdmin, PlayerID: &player.ID}
	require.NoError(t, store.CreateUser(user))

	require.NoError(t, EnsureAdmins(store, DefaultAdmins[:1]))

	assert.Equal(t, "custom-hash", user.Password)
}
