package handlers

import (
	"net/http"

	"blogapi/internal/http/respond"
	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	posts  *service.Posts
	logger *zap.Logger
}

func NewPostHandler(posts *service.Posts, logger *zap.Logger) *PostHandler {
	return &PostHandler{posts: posts, logger: logger}
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.NewPost
	if err := decodeJSON(r, &req); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	post, err := h.posts.Create(r.Context(), identity(r), req)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, post)
}

// GetPosts is public: ?userId=&category=&slug=&postId=&searchTerm=&startIndex=&limit=&order=asc
func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.PostFilter{
		UserID:     q.Get("userId"),
		Category:   q.Get("category"),
		Slug:       q.Get("slug"),
		PostID:     q.Get("postId"),
		SearchTerm: q.Get("searchTerm"),
		Page:       pageFromQuery(r, "order"),
	}

	list, err := h.posts.Find(r.Context(), filter)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var patch models.PostPatch
	if err := decodePatch(r, &patch); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	post, err := h.posts.Update(r.Context(), identity(r), mux.Vars(r)["postId"], patch)
	if err != nil {
		respond.Error(w, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, post)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.posts.Delete(r.Context(), identity(r), vars["postId"], vars["ownerId"]); err != nil {
		respond.Error(w, h.logger, err)
		return
	}

	h.logger.Info("Post deleted", zap.String("post_id", vars["postId"]))
	respond.Message(w, http.StatusOK, "Post deleted successfully")
}
