package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
)

func TestUpdateUserOnlySelf(t *testing.T) {
	_, err := UpdateUser(admin, author.ID, models.UserPatch{Email: strPtr("a@b.c")})
	assert.True(t, apperr.Is(err, apperr.Forbidden), "admins get no override")

	changes, err := UpdateUser(author, author.ID, models.UserPatch{Email: strPtr("a@b.c")})
	require.NoError(t, err)
	require.NotNil(t, changes.Email)
	assert.Nil(t, changes.Username)
	assert.Nil(t, changes.Password)
	assert.Nil(t, changes.ProfilePicture)
}

func TestUpdateUserPassword(t *testing.T) {
	cases := []struct {
		password string
		message  string
	}{
		{"short", "Password must be at least 6 characters"},
		{"has space", "Password should not contain spaces"},
		{"tab\tinside", "Password should not contain spaces"},
	}
	for _, c := range cases {
		_, err := UpdateUser(author, author.ID, models.UserPatch{Password: strPtr(c.password)})
		require.Error(t, err, c.password)
		assert.Equal(t, apperr.BadRequest, apperr.KindOf(err))
		assert.Equal(t, c.message, apperr.Message(err))
	}

	changes, err := UpdateUser(author, author.ID, models.UserPatch{Password: strPtr("longenough")})
	require.NoError(t, err)
	assert.Equal(t, "longenough", *changes.Password)

	changes, err = UpdateUser(author, author.ID, models.UserPatch{Password: strPtr("   ")})
	require.NoError(t, err)
	assert.True(t, changes.Empty(), "blank password is ignored")
}

func TestUpdateUserUsername(t *testing.T) {
	rejected := map[string]string{
		"short":                   "Username must be between 7 and 20 characters",
		"waytoolongusername12345": "Username must be between 7 and 20 characters",
		"has a space":             "Username cannot contain spaces",
		"ValidName123":            "Username must be lowercase",
		"under_score":             "Username can only contain letters and numbers",
	}
	for name, message := range rejected {
		_, err := UpdateUser(author, author.ID, models.UserPatch{Username: strPtr(name)})
		require.Error(t, err, name)
		assert.True(t, apperr.Is(err, apperr.BadRequest), name)
		assert.Equal(t, message, apperr.Message(err), name)
	}

	changes, err := UpdateUser(author, author.ID, models.UserPatch{Username: strPtr("validname123")})
	require.NoError(t, err)
	assert.Equal(t, "validname123", *changes.Username)
}

func TestDeleteUser(t *testing.T) {
	assert.NoError(t, DeleteUser(admin, author.ID))
	assert.NoError(t, DeleteUser(author, author.ID))
	assert.True(t, apperr.Is(DeleteUser(reader, author.ID), apperr.Forbidden))
}

func TestListUsers(t *testing.T) {
	assert.NoError(t, ListUsers(admin))
	assert.True(t, apperr.Is(ListUsers(author), apperr.Forbidden))
}

func TestSignUp(t *testing.T) {
	assert.True(t, apperr.Is(SignUp(models.NewUser{Username: "validname"}), apperr.BadRequest))
	assert.True(t, apperr.Is(SignUp(models.NewUser{Username: "Invalid Name", Email: "x@y.z", Password: "secret1"}), apperr.BadRequest))
	assert.NoError(t, SignUp(models.NewUser{Username: "validname", Email: "x@y.z", Password: "secret1"}))
}
