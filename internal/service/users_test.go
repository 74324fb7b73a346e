package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
	"blogapi/internal/security"
)

func TestSignUpAndSignIn(t *testing.T) {
	ctx, cancel := getTestContext()
	defer cancel()
	env := newTestEnv(t)

	user, err := env.users.SignUp(ctx, models.NewUser{Username: "janedoe1", Email: "jane@example.com", Password: "secret99"})
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, models.DefaultProfilePicture, user.ProfilePicture)

	_, err = env.users.SignUp(ctx, models.NewUser{Username: "janedoe1", Email: "other@example.com", Password: "secret99"})
	assert.True(t, apperr.Is(err, apperr.Conflict))

	_, err = env.users.SignIn(ctx, models.Credentials{Email: "jane@example.com", Password: "wrong-one"})
	assert.True(t, apperr.Is(err, apperr.BadRequest))

	_, err = env.users.SignIn(ctx, models.Credentials{Email: "nobody@example.com", Password: "secret99"})
	assert.True(t, apperr.Is(err, apperr.NotFound))

	signedIn, err := env.users.SignIn(ctx, models.Credentials{Email: "jane@example.com", Password: "secret99"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)
	assert.Empty(t, signedIn.PasswordHash)

	id, err := env.users.Identify(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: user.ID}, id)
}

func TestUpdateUserPassword(t *testing.T) {
	ctx, cancel := getTestContext()
	defer cancel()
	env := newTestEnv(t)

	self := env.signUp(ctx, t, false)

	_, err := env.users.Update(ctx, self, self.ID, models.UserPatch{Password: strPtr("short")})
	assert.True(t, apperr.Is(err, apperr.BadRequest))

	updated, err := env.users.Update(ctx, self, self.ID, models.UserPatch{Password: strPtr("longenough")})
	require.NoError(t, err)
	assert.Empty(t, updated.PasswordHash)

	stored, err := env.db.GetUserByID(ctx, self.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "longenough", stored.PasswordHash)
	assert.True(t, security.ComparePasswords(stored.PasswordHash, "longenough"))
}

func TestUpdateUserFields(t *testing.T) {
	ctx, cancel := getTestContext()
	defer cancel()
	env := newTestEnv(t)

	self := env.signUp(ctx, t, false)
	admin := env.signUp(ctx, t, true)

	_, err := env.users.Update(ctx, admin, self.ID, models.UserPatch{Email: strPtr("x@example.com")})
	assert.True(t, apperr.Is(err, apperr.Forbidden))

	_, err = env.users.Update(ctx, self, self.ID, models.UserPatch{Username: strPtr("ValidName123")})
	assert.True(t, apperr.Is(err, apperr.BadRequest))

	before, err := env.users.Get(ctx, self.ID)
	require.NoError(t, err)

	updated, err := env.users.Update(ctx, self, self.ID, models.UserPatch{Username: strPtr("validname123")})
	require.NoError(t, err)
	assert.Equal(t, "validname123", updated.Username)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.ProfilePicture, updated.ProfilePicture)

	adminUser, err := env.users.Get(ctx, admin.ID)
	require.NoError(t, err)
	_, err = env.users.Update(ctx, self, self.ID, models.UserPatch{Email: strPtr(adminUser.Email)})
	assert.True(t, apperr.Is(err, apperr.Conflict))
}

func TestUpdateUserEmptyPatch(t *testing.T) {
	ctx, cancel := getTestContext()
	defer cancel()
	env := newTestEnv(t)

	self := env.signUp(ctx, t, false)
	before, err := env.users.Get(ctx, self.ID)
	require.NoError(t, err)

	env.clock.Advance(time.Hour)
	updated, err := env.users.Update(ctx, self, self.ID, models.UserPatch{Password: strPtr("  ")})
	require.NoError(t, err)
	assert.Equal(t, before.Username, updated.Username)
	assert.Equal(t, before.UpdatedAt, updated.UpdatedAt)
	assert.Empty(t, updated.PasswordHash)

	_, err = env.users.Update(ctx, models.Identity{ID: "gone"}, "gone", models.UserPatch{})
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestDeleteUser(t *testing.T) {
	ctx, cancel := getTestContext()
	defer cancel()
	env := newTestEnv(t)

	self := env.signUp(ctx, t, false)
	other := env.signUp(ctx, t, false)
	admin := env.signUp(ctx, t, true)

	assert.True(t, apperr.Is(env.users.Delete(ctx, other, self.ID), apperr.Forbidden))
	require.NoError(t, env.users.Delete(ctx, self, self.ID))
	require.NoError(t, env.users.Delete(ctx, admin, other.ID))

	_, err := env.users.Get(ctx, self.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestListUsersHidesPasswords(t *testing.T) {
	ctx, cancel := getTestContext()
	defer cancel()
	env := newTestEnv(t)

	admin := env.signUp(ctx, t, true)
	reader := env.signUp(ctx, t, false)
	env.signUp(ctx, t, false)

	_, err := env.users.List(ctx, reader, models.Page{})
	assert.True(t, apperr.Is(err, apperr.Forbidden))

	list, err := env.users.List(ctx, admin, models.Page{})
	require.NoError(t, err)
	assert.Len(t, list.Users, 3)
	assert.Equal(t, 3, list.TotalUsers)
	assert.Equal(t, 3, list.LastMonthUsers)

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	var decoded struct {
		Users []map[string]any `json:"users"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, u := range decoded.Users {
		assert.NotContains(t, u, "password")
		assert.NotContains(t, u, "PasswordHash")
	}
	for _, u := range list.Users {
		assert.Empty(t, u.PasswordHash)
	}
}
