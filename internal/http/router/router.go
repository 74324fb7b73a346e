package router

import (
	"net/http"

	"blogapi/internal/db"
	"blogapi/internal/http/handlers"
	"blogapi/internal/http/middleware"
	"blogapi/internal/security"
	"blogapi/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Options struct {
	StaticDir string
}

func Setup(db *db.DB, sessionStore *security.SessionStore, logger *zap.Logger, opts Options) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	users := service.NewUsers(db)
	posts := service.NewPosts(db)
	comments := service.NewComments(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, sessionStore, logger)
	userHandler := handlers.NewUserHandler(users, logger)
	postHandler := handlers.NewPostHandler(posts, logger)
	commentHandler := handlers.NewCommentHandler(comments, logger)

	requireIdentity := middleware.RequireIdentity(users, sessionStore, logger)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireIdentity(h)
	}

	r.HandleFunc("/api/auth/signup", authHandler.SignUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", authHandler.SignIn).Methods("POST")

	r.HandleFunc("/api/user/signout", authHandler.SignOut).Methods("POST")
	r.Handle("/api/user", protected(userHandler.GetUsers)).Methods("GET")
	r.HandleFunc("/api/user/{userId}", userHandler.GetUser).Methods("GET")
	r.Handle("/api/user/{userId}", protected(userHandler.UpdateUser)).Methods("PUT")
	r.Handle("/api/user/{userId}", protected(userHandler.DeleteUser)).Methods("DELETE")

	r.HandleFunc("/api/post", postHandler.GetPosts).Methods("GET")
	r.Handle("/api/post", protected(postHandler.CreatePost)).Methods("POST")
	r.Handle("/api/post/{postId}/{ownerId}", protected(postHandler.UpdatePost)).Methods("PUT")
	r.Handle("/api/post/{postId}/{ownerId}", protected(postHandler.DeletePost)).Methods("DELETE")

	r.Handle("/api/comment", protected(commentHandler.CreateComment)).Methods("POST")
	r.Handle("/api/comment", protected(commentHandler.GetComments)).Methods("GET")
	r.HandleFunc("/api/comment/post/{postId}", commentHandler.GetPostComments).Methods("GET")
	r.Handle("/api/comment/{commentId}/like", protected(commentHandler.LikeComment)).Methods("PUT")
	r.Handle("/api/comment/{commentId}", protected(commentHandler.EditComment)).Methods("PUT")
	r.Handle("/api/comment/{commentId}", protected(commentHandler.DeleteComment)).Methods("DELETE")

	r.PathPrefix("/api/").Handler(handlers.NotFound(logger))
	r.PathPrefix("/").Handler(handlers.NewStaticHandler(opts.StaticDir, logger))

	return r
}
