package handlers

import (
	"net/http"

	"blogapi/internal/http/respond"
	"blogapi/internal/models"
	"blogapi/internal/security"
	"blogapi/internal/service"

	"go.uber.org/zap"
)

type AuthHandler struct {
	users    *service.Users
	sessions *security.SessionStore
	logger   *zap.Logger
}

func NewAuthHandler(users *service.Users, sessions *security.SessionStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.NewUser
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	user, err := h.users.SignUp(r.Context(), req)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	h.logger.Info("User signed up", zap.String("user_id", user.ID))
	respond.Message(w, http.StatusCreated, "Signup successful")
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	user, err := h.users.SignIn(r.Context(), req)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	if err := h.sessions.CreateSession(w, r, user.ID); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	respond.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearSession(w, r); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, "User has been signed out")
}
