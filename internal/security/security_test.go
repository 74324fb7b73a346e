package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("longenough")
	require.NoError(t, err)
	assert.NotEqual(t, "longenough", hash)
	assert.True(t, ComparePasswords(hash, "longenough"))
	assert.False(t, ComparePasswords(hash, "wrong-password"))
}

func TestSessionRoundTrip(t *testing.T) {
	store := NewSessionStore("test-secret-test-secret-test-sec", false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", nil)
	require.NoError(t, store.CreateSession(rec, req, "user-42"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	next := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	next.AddCookie(cookies[0])
	userID, err := store.UserID(next)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestSessionMissingOrForged(t *testing.T) {
	store := NewSessionStore("test-secret-test-secret-test-sec", false)

	_, err := store.UserID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)

	forged := httptest.NewRequest(http.MethodGet, "/", nil)
	forged.AddCookie(&http.Cookie{Name: SessionName, Value: "not-a-signed-value"})
	_, err = store.UserID(forged)
	assert.Error(t, err)
}

func TestClearSession(t *testing.T) {
	store := NewSessionStore("test-secret-test-secret-test-sec", false)

	rec := httptest.NewRecorder()
	require.NoError(t, store.ClearSession(rec, httptest.NewRequest(http.MethodPost, "/api/user/signout", nil)))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
