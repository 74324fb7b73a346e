package handlers

import (
	"net/http"

	"blogapi/internal/http/respond"
	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type UserHandler struct {
	users  *service.Users
	logger *zap.Logger
}

func NewUserHandler(users *service.Users, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// GetUsers is the admin directory: ?startIndex=&limit=&sort=asc
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context(), identity(r), pageFromQuery(r, "sort"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := decodePatch(r, &patch); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	user, err := h.users.Update(r.Context(), identity(r), mux.Vars(r)["userId"], patch)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := h.users.Delete(r.Context(), identity(r), userID); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	h.logger.Info("User deleted", zap.String("user_id", userID))
	respond.Message(w, http.StatusOK, "User deleted successfully")
}
