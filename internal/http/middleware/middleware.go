package middleware

import (
	"context"
	"net/http"
	"time"

	"blogapi/internal/apperr"
	"blogapi/internal/http/respond"
	"blogapi/internal/models"
	"blogapi/internal/security"
	"blogapi/internal/service"

	"go.uber.org/zap"
)

type identityKey struct{}

// IdentityFrom returns the caller identity stored by RequireIdentity.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(models.Identity)
	return id, ok
}

func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// RequireIdentity resolves the session cookie into an identity, rejecting the
// request with 401 when there is none or its user no longer exists.
func RequireIdentity(users *service.Users, sessions *security.SessionStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.UserID(r)
			if err != nil {
				logger.Debug("Rejecting request without session", zap.String("path", r.URL.Path), zap.Error(err))
				respond.Error(w, logger, apperr.NewUnauthorized("Unauthorized"))
				return
			}

			id, err := users.Identify(r.Context(), userID)
			if err != nil {
				if apperr.Is(err, apperr.NotFound) {
					err = apperr.NewUnauthorized("Unauthorized")
				}
				respond.Error(w, logger, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("Handled request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
