package security

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	// SessionName is also the cookie name the frontend expects.
	SessionName = "access_token"
	userIDKey   = "user_id"
	sessionTTL  = 7 * 24 * 60 * 60
)

var ErrNoSession = errors.New("no session")

type SessionStore struct {
	store *sessions.CookieStore
}

func NewSessionStore(secret string, secure bool) *SessionStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionTTL,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store}
}

// CreateSession writes a signed session cookie identifying userID.
func (s *SessionStore) CreateSession(w http.ResponseWriter, r *http.Request, userID string) error {
	session, _ := s.store.New(r, SessionName)
	session.Values[userIDKey] = userID
	return errors.Wrap(session.Save(r, w), "saving session failed")
}

// UserID returns the user id carried by the request's session cookie.
func (s *SessionStore) UserID(r *http.Request) (string, error) {
	session, err := s.store.Get(r, SessionName)
	if err != nil {
		return "", errors.Wrap(err, "decoding session failed")
	}
	userID, ok := session.Values[userIDKey].(string)
	if !ok || userID == "" {
		return "", ErrNoSession
	}
	return userID, nil
}

// ClearSession expires the session cookie.
func (s *SessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.New(r, SessionName)
	session.Options.MaxAge = -1
	return errors.Wrap(session.Save(r, w), "clearing session failed")
}
