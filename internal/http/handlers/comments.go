package handlers

import (
	"net/http"

	"blogapi/internal/http/respond"
	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CommentHandler struct {
	comments *service.Comments
	logger   *zap.Logger
}

func NewCommentHandler(comments *service.Comments, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, logger: logger}
}

func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req models.NewComment
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	comment, err := h.comments.Create(r.Context(), identity(r), req)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) GetPostComments(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r, "sort")
	if r.URL.Query().Get("limit") == "" {
		page.Limit = models.PostCommentsLimit
	}

	comments, err := h.comments.ForPost(r.Context(), mux.Vars(r)["postId"], page)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	list, err := h.comments.List(r.Context(), identity(r), pageFromQuery(r, "sort"))
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *CommentHandler) LikeComment(w http.ResponseWriter, r *http.Request) {
	comment, err := h.comments.Like(r.Context(), identity(r), mux.Vars(r)["commentId"])
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	comment, err := h.comments.Edit(r.Context(), identity(r), mux.Vars(r)["commentId"], req.Content)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.comments.Delete(r.Context(), identity(r), mux.Vars(r)["commentId"]); err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "Comment has been deleted")
}
