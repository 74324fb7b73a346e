package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"blogapi/internal/apperr"
	"blogapi/internal/http/respond"

	"go.uber.org/zap"
)

// StaticHandler serves the built frontend. Paths that do not name a file get
// index.html so the client-side router can resolve them.
type StaticHandler struct {
	dir    string
	logger *zap.Logger
}

func NewStaticHandler(dir string, logger *zap.Logger) *StaticHandler {
	return &StaticHandler{dir: dir, logger: logger}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := filepath.Join(h.dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	index := filepath.Join(h.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		respond.Error(w, h.logger, apperr.NewNotFound("Not found"))
		return
	}
	http.ServeFile(w, r, index)
}

// NotFound answers unknown API routes with the JSON error envelope.
func NotFound(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, logger, apperr.NewNotFound("Route not found"))
	}
}
